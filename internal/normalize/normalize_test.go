package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "pedro", want: "pedro"},
		{name: "upper", in: "PEDRO", want: "pedro"},
		{name: "accents", in: "José María", want: "jose maria"},
		{name: "enie folds", in: "Ñoño", want: "nono"},
		{name: "spaces", in: "  Juan   Cruz ", want: "juan cruz"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
