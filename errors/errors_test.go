package errors

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
)

func TestErrorsIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrUnauthorized,
			b:      ErrUnauthorized,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrUnauthorized,
			b:      ErrState,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(ErrUnauthorized, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrUnauthorized,
			b:      Wrap(ErrNotFound, "kerapu"),
			wantIs: false,
		},
		"not equal to stdlib error": {
			a:      ErrUnauthorized,
			b:      fmt.Errorf("stdlib error"),
			wantIs: false,
		},
		"not equal to a wrapped stdlib error": {
			a:      ErrUnauthorized,
			b:      Wrap(fmt.Errorf("stdlib error"), "wrapped"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*customError)(nil),
			wantIs: true,
		},
		"nil is not a non-nil error": {
			a:      nil,
			b:      ErrState,
			wantIs: false,
		},
		"multierror with the same error": {
			a:      ErrUnauthorized,
			b:      Append(ErrUnauthorized, ErrState),
			wantIs: true,
		},
		"multierror without the same error": {
			a:      ErrUnauthorized,
			b:      Append(ErrNotFound, ErrState),
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result: %v", got)
			}
		})
	}
}

type customError struct{}

func (customError) Error() string {
	return "custom error"
}

func TestWrapEmpty(t *testing.T) {
	if err := Wrap(nil, "wrapping <nil>"); err != nil {
		t.Fatal(err)
	}
}

func TestWrappedIs(t *testing.T) {
	err := Wrap(ErrDuplicate, "banana")
	if !ErrDuplicate.Is(err) {
		t.Fatal("wrapped error should be the root error")
	}

	err = Wrap(err, "supermarket")
	if !ErrDuplicate.Is(err) {
		t.Fatal("double wrapped error should still be the root error")
	}

	err = errors.Wrap(err, "outer")
	if !ErrDuplicate.Is(err) {
		t.Fatal("pkg/errors wrapped error should still be the root error")
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "outer")
	const want = "outer: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestStackTraceAttachedOnce(t *testing.T) {
	inner := Wrap(ErrHuman, "inner")
	outer := Wrap(inner, "outer")

	st, ok := outer.(stackTracer)
	if !ok {
		t.Fatal("wrapped error must carry a stack trace")
	}
	innerSt, ok := inner.(stackTracer)
	if !ok {
		t.Fatal("inner error must carry a stack trace")
	}
	if fmt.Sprintf("%v", st.StackTrace()) != fmt.Sprintf("%v", innerSt.StackTrace()) {
		t.Fatal("stack trace must be attached at the lowest frame only")
	}
}

func TestRegisterPanicsOnCollision(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("register must panic when reusing an error code")
		}
	}()
	Register(2, "colliding with unauthorized")
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("berries")
	}()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("appending nils must produce nil, got %+v", err)
	}

	if err := Append(nil, ErrState, nil); !ErrState.Is(err) {
		t.Fatalf("single error append must keep the root, got %+v", err)
	}

	err := Append(ErrState, ErrEmpty)
	if !ErrState.Is(err) || !ErrEmpty.Is(err) {
		t.Fatalf("combined error must match all members, got %+v", err)
	}
	if ErrNotFound.Is(err) {
		t.Fatal("combined error must not match a foreign root")
	}
}
