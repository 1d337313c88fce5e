package rating

import "testing"

func TestElo(t *testing.T) {
	type args struct {
		ra int
		rb int
		k  int
		sa Points
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{
			name: "same rating draw",
			args: args{ra: 1000, rb: 1000, k: 40, sa: Draw},
			want: 1000,
		},
		{
			name: "same rating win",
			args: args{ra: 1000, rb: 1000, k: 40, sa: Win},
			want: 1020,
		},
		{
			name: "same rating lose",
			args: args{ra: 1000, rb: 1000, k: 40, sa: Lose},
			want: 980,
		},
		{
			name: "favourite wins",
			args: args{ra: 1100, rb: 1000, k: 40, sa: Win},
			want: 1114,
		},
		{
			name: "favourite loses",
			args: args{ra: 1100, rb: 1000, k: 40, sa: Lose},
			want: 1074,
		},
		{
			name: "underdog wins",
			args: args{ra: 1000, rb: 1100, k: 40, sa: Win},
			want: 1026,
		},
		{
			name: "settled player",
			args: args{ra: 1000, rb: 1000, k: 20, sa: Win},
			want: 1010,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Elo(tt.args.ra, tt.args.rb, tt.args.k, tt.args.sa); got != tt.want {
				t.Errorf("Elo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoefficient(t *testing.T) {
	tests := []struct {
		name   string
		games  int
		rating int
		want   int
	}{
		{name: "new player", games: 3, rating: 2500, want: 40},
		{name: "regular", games: 31, rating: 1200, want: 20},
		{name: "master", games: 31, rating: 2400, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coefficient(tt.games, tt.rating); got != tt.want {
				t.Errorf("Coefficient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTeamElo(t *testing.T) {
	if got := TeamElo(nil); got != InitialElo {
		t.Errorf("TeamElo(nil) = %v", got)
	}
	if got := TeamElo([]int{1000, 1101}); got != 1051 {
		t.Errorf("TeamElo() = %v, want 1051", got)
	}
}
