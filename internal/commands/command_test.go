package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add morning run", TypeAdd},
		{"done read 2026-08-31", TypeDone},
		{"target read 5", TypeTarget},
		{"show stats", TypeShow},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseDoneSplitsTrailingDate(t *testing.T) {
	cmd, err := Parse("/done morning run 2026-08-30")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Done.Habit != "morning run" || cmd.Done.DateKey != "2026-08-30" {
		t.Fatalf("done args = %+v", cmd.Done)
	}

	cmd, err = Parse("/done morning run")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Done.Habit != "morning run" || cmd.Done.DateKey != "" {
		t.Fatalf("done args = %+v", cmd.Done)
	}
}

func TestParseTarget(t *testing.T) {
	cmd, err := Parse("target morning run 5")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Target.Habit != "morning run" || cmd.Target.PerWeek != 5 {
		t.Fatalf("target args = %+v", cmd.Target)
	}

	_, err = Parse("target run five")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input error, got %v", in, err)
		}
	}
}

func TestParseShowRejectsUnknownSubject(t *testing.T) {
	_, err := Parse("show everything")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/add drink water")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Add: func(a AddArgs) (Result, error) {
			called = true
			if a.Name != "drink water" {
				t.Fatalf("unexpected name: %q", a.Name)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("show habits")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
