package driver_test

import (
	"strings"
	"testing"

	"veriscript/internal/driver"
)

// Программа из init-заготовки: оба режима синхронизации, вызов,
// переведённый в последовательный параметром, и инлайн-арифметика.
const exampleProgram = `// Example veriscript program.

int.32 a;
signed.16 b;
int counter;

function::concurrent int.32 add(int.32 x, int.32::sequential y) {
    result = x + y;
}

function::sequential signed.8 multiply(int.8 x, int.8 y) {
    temp = x * y;
    result = temp;
}

a = 0;
b = 5;
counter = 0;

a = add(b, counter);
b = multiply(3, 4);

counter = counter + 1;
`

func TestExampleProgram(t *testing.T) {
	res, err := driver.CompileSource("main.vc", []byte(exampleProgram), driver.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	out := res.Output

	for _, needle := range []string{
		"    reg [31:0] a;",
		"    reg signed [15:0] b;",
		"    reg [31:0] counter;",

		// Вызов add становится последовательным из-за ::sequential у y.
		"            a <= add_inst_0_result;",
		"            b <= multiply_inst_1_result;",
		"            counter <= counter + 1;",

		"module add(",
		"    input [31:0] y,",
		"    output reg [31:0] result",
		"            result <= x + y;",

		"module multiply(",
		"    input [7:0] x,",
		"    output reg signed [7:0] result",
		"            temp <= x * y;",
		"            result <= temp;",

		"    // Sequential function instance: add_inst_0",
		"    add add_inst_0 (",
		"        .x(b),",
		"        .y(counter),",
		"        .result(add_inst_0_result)",

		"    multiply multiply_inst_1 (",
		"        .x(3),",
		"        .y(4),",
		"        .result(multiply_inst_1_result)",
	} {
		if !strings.Contains(out, needle) {
			t.Errorf("output missing %q:\n%s", needle, out)
		}
	}

	if strings.Contains(out, "add(b, counter)") {
		t.Errorf("sequential call left inline:\n%s", out)
	}
	if len(res.Table.Pending) != 2 {
		t.Errorf("pending instances = %d, want 2", len(res.Table.Pending))
	}
}
