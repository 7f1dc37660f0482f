package dispatch

import (
	"errors"
	"testing"
	"time"
)

func TestBuiltinFactories(t *testing.T) {
	registry := NewFactoryRegistry()

	tests := []struct {
		name     string
		typeName string
		token    string
		want     any
		wantErr  bool
	}{
		{name: "string passes through", typeName: "string", token: "hello", want: "hello"},
		{name: "number converts", typeName: "number", token: "42", want: 42},
		{name: "number rejects text", typeName: "number", token: "abc", wantErr: true},
		{name: "int alias converts", typeName: "int", token: "42", want: 42},
		{name: "int alias rejects text", typeName: "int", token: "abc", wantErr: true},
		{name: "integer alias converts", typeName: "integer", token: "42", want: 42},
		{name: "integer alias rejects text", typeName: "integer", token: "abc", wantErr: true},
		{name: "float converts", typeName: "float", token: "3.5", want: 3.5},
		{name: "float rejects text", typeName: "float", token: "pi", wantErr: true},
		{name: "bool converts", typeName: "bool", token: "true", want: true},
		{name: "bool rejects text", typeName: "bool", token: "yep", wantErr: true},
		{name: "duration converts", typeName: "duration", token: "90s", want: 90 * time.Second},
		{name: "duration rejects text", typeName: "duration", token: "soon", wantErr: true},
		{name: "user strips mention", typeName: "user", token: "<@123>", want: "123"},
		{name: "user strips nick mention", typeName: "user", token: "<@!123>", want: "123"},
		{name: "user strips at sign", typeName: "user", token: "@alice", want: "alice"},
		{name: "user keeps bare token", typeName: "user", token: "alice", want: "alice"},
		{name: "user rejects empty mention", typeName: "user", token: "<@>", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := registry.Get(tt.typeName)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.typeName, err)
			}
			got, err := factory(tt.token)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("factory(%q) = %v, want error", tt.token, got)
				}
				var badType *BadArgumentTypeError
				if !errors.As(err, &badType) {
					t.Fatalf("factory(%q) error = %T, want *BadArgumentTypeError", tt.token, err)
				}
				if badType.Value != tt.token {
					t.Errorf("BadArgumentTypeError.Value = %q, want %q", badType.Value, tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("factory(%q): %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("factory(%q) = %v (%T), want %v (%T)", tt.token, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestNumberAliasErrorReportsAliasRegisteredType(t *testing.T) {
	// int/integer share the number factory, so the reported type name is
	// "number" regardless of the alias used.
	registry := NewFactoryRegistry()
	factory, err := registry.Get("integer")
	if err != nil {
		t.Fatal(err)
	}
	_, err = factory("abc")
	var badType *BadArgumentTypeError
	if !errors.As(err, &badType) {
		t.Fatalf("error = %T, want *BadArgumentTypeError", err)
	}
	if badType.Type != "number" {
		t.Errorf("BadArgumentTypeError.Type = %q, want %q", badType.Type, "number")
	}
}

func TestRegisterCustomFactory(t *testing.T) {
	registry := NewFactoryRegistry()
	registry.Register("upper", func(token string) (any, error) {
		return "UPPER:" + token, nil
	})
	registry.Alias("loud", "upper")

	factory, err := registry.Get("loud")
	if err != nil {
		t.Fatal(err)
	}
	got, err := factory("hi")
	if err != nil {
		t.Fatal(err)
	}
	if got != "UPPER:hi" {
		t.Errorf("factory = %v, want UPPER:hi", got)
	}
}

func TestGetUnknownType(t *testing.T) {
	registry := NewFactoryRegistry()
	if _, err := registry.Get("nope"); err == nil {
		t.Error("Get(nope) should fail")
	}
}
