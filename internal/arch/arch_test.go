// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// shell lists the command-line layers no library package may reach into.
var shell = []string{
	"seqjoin/internal/appcore", "seqjoin/internal/appshell",
	"seqjoin/internal/clibase", "seqjoin/internal/cliutil",
	"seqjoin/internal/collectcli", "seqjoin/internal/excludecli",
	"seqjoin/internal/mergecli", "seqjoin/internal/convertcli",
	"seqjoin/internal/collectapp", "seqjoin/internal/excludeapp",
	"seqjoin/internal/mergeapp", "seqjoin/internal/convertapp",
	"seqjoin/cmd/",
}

// under reports whether path is prefix or a package below it.
func under(path, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func with(extra ...string) []string { return append(append([]string(nil), shell...), extra...) }

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"seqjoin/internal/key":       with("seqjoin/internal/fasta", "seqjoin/internal/table", "seqjoin/internal/correlate", "seqjoin/internal/pipeline", "seqjoin/internal/writers"),
		"seqjoin/internal/fasta":     with("seqjoin/internal/correlate", "seqjoin/internal/pipeline", "seqjoin/internal/writers"),
		"seqjoin/internal/table":     with("seqjoin/internal/correlate", "seqjoin/internal/pipeline", "seqjoin/internal/writers"),
		"seqjoin/internal/cluster":   with("seqjoin/internal/correlate", "seqjoin/internal/pipeline", "seqjoin/internal/writers"),
		"seqjoin/internal/correlate": with("seqjoin/internal/pipeline", "seqjoin/internal/writers"),
		"seqjoin/internal/writers":   with("seqjoin/internal/pipeline"),
		"seqjoin/internal/pipeline":  shell,
		"seqjoin/internal/convert":   shell,
		"seqjoin/internal/config":    shell,
		"seqjoin/pkg/":               with("seqjoin/internal/"),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "seqjoin/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !under(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "seqjoin/") {
					continue
				}
				for _, ban := range forbidden {
					if under(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
