package policycheck

import (
	"fmt"
	"go/ast"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Library code logs through logging.Logger. Direct writes to the process's
// stdout would corrupt the CLI's single-line demo output.
func TestNoPrintInLibrary(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg,
		module+"/pkg/popdb/...",
		module+"/internal/dataset",
		module+"/internal/loader",
	)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string

	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}

				selector, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					return true
				}

				obj := pkg.TypesInfo.Uses[selector.Sel]
				if obj == nil || obj.Pkg() == nil {
					return true
				}

				if forbiddenPrint(obj.Pkg().Path(), obj.Name()) {
					pos := fset.Position(call.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s.%s writes to the process output; use logging.Logger", pos, obj.Pkg().Path(), obj.Name()))
				}
				return true
			})
		}
	}

	if len(findings) > 0 {
		t.Fatalf("print policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

func forbiddenPrint(pkgPath, name string) bool {
	switch pkgPath {
	case "fmt":
		switch name {
		case "Print", "Printf", "Println":
			return true
		}
	case "log":
		return true
	}
	return false
}
