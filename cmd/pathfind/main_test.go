package main

import (
	"bytes"
	"strings"
	"testing"

	"go-prevent/internal/defs"
	"go-prevent/internal/level"
	"go-prevent/pkg/grid"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		in      string
		want    grid.Tile
		wantErr bool
	}{
		{"3,4", grid.Tile{X: 3, Y: 4}, false},
		{" 10 , 0 ", grid.Tile{X: 10, Y: 0}, false},
		{"3", grid.Tile{}, true},
		{"a,1", grid.Tile{}, true},
		{"1,b", grid.Tile{}, true},
	}
	for _, tc := range tests {
		got, err := parseTile(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseTile(%q): unexpected error state %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseTile(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestPrintField(t *testing.T) {
	lvl, err := level.Parse(strings.NewReader("1\nS.X\n..F"), defs.Default())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	printField(&out, lvl, grid.BuildDistanceField(lvl.Finish, lvl.Board))

	want := "   S   2   #\n" +
		"   2   1   0\n" +
		"reachable: 5 tiles\n"
	if out.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, out.String())
	}
}
