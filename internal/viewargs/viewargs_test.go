package viewargs

import (
	"errors"
	"testing"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/chunked_mandel"
)

// parse fills a View the way the commands do.
func parse(t *testing.T, cmdline ...string) View {
	t.Helper()
	var dest struct {
		View
	}
	p, err := arg.NewParser(arg.Config{}, &dest)
	if err != nil {
		t.Fatalf("arg.NewParser: %v", err)
	}
	if err := p.Parse(cmdline); err != nil {
		t.Fatalf("Parse(%q): %v", cmdline, err)
	}
	return dest.View
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name    string
		cmdline []string
		want    mandel.ViewRequest
	}{
		{
			name: "defaults",
			want: mandel.Export(mandel.HomeCenter, mandel.HomePlaneWidth),
		},
		{
			name:    "explicit view",
			cmdline: []string{"--re=-1.5", "--im=0.25", "--width=0.5", "--px-width=320", "--px-height=200", "--iter=100", "--chunk=16"},
			want: mandel.ViewRequest{
				Center: complex(-1.5, 0.25), Width: 320, Height: 200, PlaneWidth: 0.5,
				ChunkWidth: 16, ChunkHeight: 16, MaxIterations: 100,
			},
		},
		{
			name:    "only the imaginary part",
			cmdline: []string{"--im=1"},
			want:    mandel.Export(complex(-0.75, 1), mandel.HomePlaneWidth),
		},
		{
			name:    "region",
			cmdline: []string{"--region=dragon", "--re=3"},
			want:    mandel.Export(mandel.ValleyOfTheDragon.Center(), mandel.ValleyOfTheDragon.PlaneWidth()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.cmdline...).Request()
			if err != nil {
				t.Fatalf("Request(): %v", err)
			}
			if got != tt.want {
				t.Errorf("Request() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRequestInvalid(t *testing.T) {
	tests := []struct {
		name    string
		cmdline []string
	}{
		{name: "zero image width", cmdline: []string{"--px-width=0"}},
		{name: "zero image height", cmdline: []string{"--px-height=0"}},
		{name: "zero iterations", cmdline: []string{"--iter=0"}},
		{name: "zero chunk", cmdline: []string{"--chunk=0"}},
		{name: "all zeros", cmdline: []string{"--px-width=0", "--iter=0", "--chunk=0"}},
		{name: "negative width", cmdline: []string{"--width=-1"}},
		{name: "too many iterations", cmdline: []string{"--iter=100000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.cmdline...).Request()
			if !errors.Is(err, mandel.ErrInvalidRequest) {
				t.Errorf("Request() = %+v, %v, want %v", got, err, mandel.ErrInvalidRequest)
			}
		})
	}
}

func TestRequestUnknownRegion(t *testing.T) {
	if _, err := parse(t, "--region=atlantis").Request(); err == nil {
		t.Error("Request() accepted an unknown region")
	}
}
