// Package codegen renders the compiled unit into Verilog-style text.
//
// The output shape is fixed: a top module `main` with clk/rst ports,
// one register per global variable, one reset-synchronous always block
// holding the top-level assignments, one submodule per declared
// function, one instantiation block per pending sequential call, and
// the closing endmodule. Everything iterates in declaration or
// resolution order, so generation is deterministic.
//
// Ширина и знаковость подставляются в шаблон текстом; никакой
// аппаратной семантики сверх каркаса регистров и модулей здесь нет.
package codegen

import (
	"fmt"
	"strings"

	"veriscript/internal/ast"
	"veriscript/internal/diag"
	"veriscript/internal/symbols"
)

type Options struct {
	// Permissive silences diagnostics about argument/parameter
	// mismatches in instance blocks.
	Permissive bool
	// Reporter может быть nil.
	Reporter diag.Reporter
}

// DefaultOptions returns the tolerant configuration used by the driver.
func DefaultOptions(reporter diag.Reporter) Options {
	return Options{Permissive: true, Reporter: reporter}
}

type generator struct {
	lines []string
	table *symbols.Table
	opts  Options
}

func (g *generator) emit(line string) {
	g.lines = append(g.lines, line)
}

func (g *generator) emitf(format string, args ...any) {
	g.lines = append(g.lines, fmt.Sprintf(format, args...))
}

// Generate renders the unit and symbol table into the final text. The
// result ends with a trailing newline.
func Generate(unit *ast.Unit, table *symbols.Table, opts Options) string {
	g := &generator{table: table, opts: opts}

	g.emit("module main(")
	g.emit("    input clk,")
	g.emit("    input rst")
	g.emit(");")
	g.emit("")

	for _, v := range table.Variables() {
		g.emit(regDecl(v))
	}
	g.emit("")

	g.emit("    always @(posedge clk or posedge rst) begin")
	g.emit("        if (rst) begin")
	for _, v := range table.Variables() {
		g.emitf("            %s <= 0;", v.Name)
	}
	g.emit("        end else begin")

	table.InClockedBlock = true
	for _, stmt := range unit.Stmts {
		if stmt.Kind != ast.StmtAssign {
			continue
		}
		g.emit("            " + g.renderAssign(stmt.Assign))
	}
	table.InClockedBlock = false

	g.emit("        end")
	g.emit("    end")
	g.emit("")

	for _, fn := range table.Functions() {
		g.functionModule(fn)
	}
	for _, inst := range table.Pending {
		g.instanceBlock(inst)
	}

	g.emit("endmodule")

	return strings.Join(g.lines, "\n") + "\n"
}

// renderAssign formats one assignment, non-blocking inside a clocked
// block and continuous otherwise.
func (g *generator) renderAssign(a *ast.AssignStmt) string {
	if g.table.InClockedBlock {
		return fmt.Sprintf("%s <= %s;", a.Target, a.Expr.Render())
	}
	return fmt.Sprintf("assign %s = %s;", a.Target, a.Expr.Render())
}

// regDecl formats one register declaration line.
func regDecl(v *ast.Variable) string {
	return fmt.Sprintf("    reg %s[%d:0] %s;", signedQualifier(v.Type.Signed()), v.Type.Width-1, v.Name)
}

func signedQualifier(signed bool) string {
	if signed {
		return "signed "
	}
	return ""
}

// functionModule renders one submodule: clk/rst, one input per
// parameter and, when a return type is declared, an output register
// named result that clears to zero on reset.
func (g *generator) functionModule(fn *ast.Function) {
	ports := []string{"input clk", "input rst"}
	for _, p := range fn.Params {
		ports = append(ports, fmt.Sprintf("input %s[%d:0] %s",
			signedQualifier(p.Type.Signed()), p.Type.Width-1, p.Name))
	}
	if fn.Return != nil {
		ports = append(ports, fmt.Sprintf("output reg %s[%d:0] result",
			signedQualifier(fn.Return.Signed()), fn.Return.Width-1))
	}

	g.emitf("module %s(", fn.Name)
	g.emit("    " + strings.Join(ports, ",\n    "))
	g.emit(");")
	g.emit("")

	g.emit("    always @(posedge clk or posedge rst) begin")
	g.emit("        if (rst) begin")
	if fn.Return != nil {
		g.emit("            result <= 0;")
	}
	g.emit("        end else begin")

	g.table.InClockedBlock = true
	for _, stmt := range fn.Body {
		if stmt.Kind != ast.StmtAssign {
			continue
		}
		g.emit("            " + g.renderAssign(stmt.Assign))
	}
	g.table.InClockedBlock = false

	g.emit("        end")
	g.emit("    end")
	g.emit("")
	g.emit("endmodule")
	g.emit("")
}

// instanceBlock renders the instantiation of one resolved sequential
// call. Arguments bind positionally; missing trailing arguments bind
// to the literal 0.
func (g *generator) instanceBlock(inst symbols.PendingInstance) {
	g.emitf("    // Sequential function instance: %s", inst.Name)
	g.emitf("    %s %s (", inst.Fn.Name, inst.Name)

	bindings := []string{".clk(clk)", ".rst(rst)"}
	for i, p := range inst.Fn.Params {
		arg := "0"
		if i < len(inst.Args) {
			arg = strings.TrimSpace(inst.Args[i])
		} else if !g.opts.Permissive && g.opts.Reporter != nil {
			g.opts.Reporter.Report(diag.GenMissingArguments, diag.SevWarning, inst.Fn.Span,
				fmt.Sprintf("instance %s: parameter %s has no argument, bound to 0", inst.Name, p.Name))
		}
		bindings = append(bindings, fmt.Sprintf(".%s(%s)", p.Name, arg))
	}
	if inst.Fn.Return != nil {
		bindings = append(bindings, fmt.Sprintf(".result(%s_result)", inst.Name))
	}

	for i, b := range bindings {
		sep := ","
		if i == len(bindings)-1 {
			sep = ""
		}
		g.emit("        " + b + sep)
	}
	g.emit("    );")
	g.emit("")
}
