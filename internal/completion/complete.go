package completion

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pranshuparmar/memtop/internal/output"
	"github.com/pranshuparmar/memtop/internal/proc"
	"github.com/pranshuparmar/memtop/internal/rank"
)

// completionConcurrency bounds the collectors used while the shell waits.
const completionConcurrency = 4

// shellMetaChars contains characters that are unsafe in shell completion contexts.
// Names containing these characters are left out of descriptions.
const shellMetaChars = "\t\n$`\\\"';&|<>(){}[]!*?~"

// isShellSafe returns true if the string contains no shell metacharacters
func isShellSafe(s string) bool {
	return !strings.ContainsAny(s, shellMetaChars)
}

// PIDs returns completion candidates for a pid argument, largest footprint
// first. Each candidate is "pid\tname (size)", the format cobra passes to
// shells that show descriptions. The completing process and its parent are
// left out.
func PIDs(ctx context.Context, prefix string) []string {
	processes, err := proc.ListProcesses(proc.ScopeAll, 0)
	if err != nil {
		return nil
	}

	results := proc.CollectAll(ctx, processes, completionConcurrency)
	ranked := rank.Reduce(0, results, len(results))

	self, parent := int32(os.Getpid()), int32(os.Getppid())
	seen := make(map[int32]bool, len(ranked.Records))

	var candidates []string
	for _, r := range ranked.Records {
		if r.PID <= 0 || r.PID == self || r.PID == parent || seen[r.PID] {
			continue
		}
		seen[r.PID] = true

		pid := strconv.Itoa(int(r.PID))
		if !strings.HasPrefix(pid, prefix) {
			continue
		}
		if !isShellSafe(r.Name) {
			candidates = append(candidates, pid)
			continue
		}
		candidates = append(candidates, fmt.Sprintf("%s\t%s (%s)", pid, r.Name, output.FormatBytes(r.Footprint)))
	}
	return candidates
}
