package convert

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func isSlice(v any) bool {
	_, ok := v.([]any)
	return ok
}

var (
	upperRule = Rule[string]{
		Name:  "upper",
		Match: isString,
		Convert: func(_ Converter[string], v any) (string, error) {
			return strings.ToUpper(v.(string)), nil
		},
	}
	joinRule = Rule[string]{
		Name:  "join",
		Match: isSlice,
		Convert: func(c Converter[string], v any) (string, error) {
			var parts []string
			for _, item := range v.([]any) {
				s, err := c.Convert(item)
				if err != nil {
					return "", err
				}
				parts = append(parts, s)
			}
			return strings.Join(parts, ","), nil
		},
	}
	anyRule = Rule[string]{
		Name:  "any",
		Match: func(any) bool { return true },
		Convert: func(_ Converter[string], v any) (string, error) {
			return fmt.Sprint(v), nil
		},
	}
)

func TestRegistryFirstMatchWins(t *testing.T) {
	r := New("test", upperRule, joinRule, anyRule)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "ABC"},
		{"number falls through", 42, "42"},
		{"nested slice", []any{"a", []any{"b", 1}}, "A,B,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Convert(tt.in)
			if err != nil {
				t.Fatalf("Convert(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEmptyRegistryReportsValue(t *testing.T) {
	r := New[string]("empty")

	_, err := r.Convert(3.5)
	var ce *ConversionError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConversionError", err)
	}
	if ce.Family != "empty" || ce.Value != 3.5 || ce.TooDeep() {
		t.Errorf("unexpected error fields: %+v", ce)
	}
	if msg := err.Error(); !strings.Contains(msg, "3.5") || !strings.Contains(msg, "float64") {
		t.Errorf("error should name value and kind: %q", msg)
	}
	if !IsConversionError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsConversionError should see through wrapping")
	}
}

func TestMustConvertPanics(t *testing.T) {
	r := New[string]("empty")

	defer func() {
		err, ok := recover().(error)
		if !ok || !IsConversionError(err) {
			t.Fatalf("recover() = %v, want ConversionError", err)
		}
	}()
	r.MustConvert("x")
	t.Fatal("MustConvert should have panicked")
}

func TestRegistryDepthGuard(t *testing.T) {
	r := New("test", joinRule, anyRule)

	loop := []any{nil}
	loop[0] = loop

	_, err := r.Convert(loop)
	var ce *ConversionError
	if !errors.As(err, &ce) || !ce.TooDeep() {
		t.Fatalf("err = %v, want depth error", err)
	}
	if !strings.Contains(err.Error(), "[]interface {}") {
		t.Errorf("error should name the kind: %q", err.Error())
	}
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := New("test", upperRule, anyRule)

	lower := Rule[string]{
		Name:  "upper",
		Match: isString,
		Convert: func(_ Converter[string], v any) (string, error) {
			return strings.ToLower(v.(string)), nil
		},
	}
	if !r.Replace("upper", lower) {
		t.Fatal("Replace(upper) = false")
	}
	if r.Replace("missing", lower) {
		t.Error("Replace(missing) = true")
	}

	if got := r.MustConvert("AbC"); got != "abc" {
		t.Errorf("after Replace = %q, want abc", got)
	}
	names := []string{}
	for _, rule := range r.Rules() {
		names = append(names, rule.Name)
	}
	if strings.Join(names, ",") != "upper,any" {
		t.Errorf("rule order = %v", names)
	}
}

func TestCloneIsIndependentAndRecursesIntoClone(t *testing.T) {
	base := New("base", upperRule, joinRule, anyRule)
	clone := base.Clone("clone")

	clone.Replace("upper", Rule[string]{
		Name:  "upper",
		Match: isString,
		Convert: func(_ Converter[string], v any) (string, error) {
			return "<" + v.(string) + ">", nil
		},
	})

	if got := base.MustConvert([]any{"a"}); got != "A" {
		t.Errorf("base = %q, want A", got)
	}
	// joinRule recurses through the registry that matched, so nested
	// strings pick up the clone's replacement.
	if got := clone.MustConvert([]any{"a", "b"}); got != "<a>,<b>" {
		t.Errorf("clone = %q, want <a>,<b>", got)
	}
	if clone.Family() != "clone" {
		t.Errorf("Family() = %q", clone.Family())
	}
}

func TestAppend(t *testing.T) {
	r := New[string]("test")
	if _, err := r.Convert(1); err == nil {
		t.Fatal("empty registry converted a value")
	}

	r.Append(anyRule)
	if got := r.MustConvert(1); got != "1" {
		t.Errorf("after Append = %q", got)
	}
}

type label string

func (l label) String() string { return "label " + string(l) }

func TestConversionErrorUsesStringer(t *testing.T) {
	_, err := New[string]("empty").Convert(label("x"))
	if err == nil {
		t.Fatal("empty registry converted a value")
	}
	want := `convert: could not convert "label x" (convert.label) to a empty node: ` + ReasonNoRule
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
