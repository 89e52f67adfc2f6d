package codegen

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/lors-lang/lorsc/internal/lexer"
	"github.com/lors-lang/lorsc/internal/parser"
)

func compile(t *testing.T, src string) string {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lexing failed: %v", err)
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	cpp, err := Generate(program)
	if err != nil {
		t.Fatalf("codegen failed: %v", err)
	}
	return cpp
}

func TestGenerateHello(t *testing.T) {
	cpp := compile(t, `algorithm main() -> whole begin reveal("hi"); result 0; end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateArithmeticAndControl(t *testing.T) {
	cpp := compile(t, `
algorithm main() -> whole begin
    datum sum: whole = 0;
    datum i: whole = 1;
    cycle (i < 11) do
        sum = sum + i;
        i = i + 1;
    conclude
    reveal(sum);
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateRecursion(t *testing.T) {
	cpp := compile(t, `
algorithm fib(n: whole) -> whole begin
    verify (n < 2) then
        result n;
    conclude
    result fib(n - 1) + fib(n - 2);
end
algorithm main() -> whole begin
    reveal(fib(10));
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateStructConstruction(t *testing.T) {
	cpp := compile(t, `
structure P begin
    datum x: whole;
    datum y: whole;
end
algorithm main() -> whole begin
    datum p: P = P(3, 4);
    reveal(p.x + p.y);
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateSequence(t *testing.T) {
	cpp := compile(t, `
algorithm main() -> whole begin
    datum xs: sequence<whole> = [1, 2, 3];
    reveal(xs[0], xs[2]);
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateNonStructCallIsPlainCall(t *testing.T) {
	cpp := compile(t, `
algorithm square(n: whole) -> whole begin
    result n * n;
end
algorithm main() -> whole begin
    datum x: whole = square(5);
    reveal(x);
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateZeroArgReveal(t *testing.T) {
	cpp := compile(t, `algorithm main() -> whole begin reveal(); result 0; end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateBooleanReveal(t *testing.T) {
	cpp := compile(t, `algorithm main() -> whole begin reveal(true, false); result 0; end`)
	snaps.MatchSnapshot(t, cpp)
}

func TestGenerateInquire(t *testing.T) {
	cpp := compile(t, `
algorithm main() -> whole begin
    datum name: series = inquire();
    reveal(name);
    result 0;
end`)
	snaps.MatchSnapshot(t, cpp)
}
