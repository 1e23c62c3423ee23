package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectro/spectro/axis"
)

func mustUniform(t *testing.T, offset, scale float64, size int) *axis.Uniform {
	t.Helper()
	u, err := axis.NewUniform(offset, scale, size)
	if err != nil {
		t.Fatalf("NewUniform() error = %v", err)
	}
	return u
}

func TestNewShapeValidation(t *testing.T) {
	ax := mustUniform(t, 0, 1, 4)
	if _, err := New(ax, make([]float64, 5)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := New(ax, make([]float64, 8), WithNavigation(3)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := New(ax, nil, WithNavigation(0)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	s, err := New(ax, make([]float64, 24), WithNavigation(2, 3))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s.Rows() != 6 {
		t.Fatalf("Rows() = %d, want 6", s.Rows())
	}
}

func TestSpectrumIsImmutable(t *testing.T) {
	ax := mustUniform(t, 0, 1, 3)
	in := []float64{1, 2, 3}
	meta := Metadata{"title": "a"}
	s, err := New(ax, in, WithMetadata(meta))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	in[0] = 99
	meta["title"] = "b"
	s.Data()[1] = 99
	s.Row(0)[2] = 99
	s.Metadata()["title"] = "c"

	if diff := cmp.Diff([]float64{1, 2, 3}, s.Data()); diff != "" {
		t.Fatalf("data changed (-want +got):\n%s", diff)
	}
	if s.Metadata()["title"] != "a" {
		t.Fatalf("metadata = %v, want title=a", s.Metadata())
	}
}

func TestClone(t *testing.T) {
	ax := mustUniform(t, 0, 1, 2)
	s, _ := FromRows(ax, [][]float64{{1, 2}, {3, 4}}, WithMetadata(Metadata{"k": "v"}))
	c := s.Clone()
	if !c.SameNavigation(s) {
		t.Fatal("clone navigation differs")
	}
	if diff := cmp.Diff(s.Data(), c.Data()); diff != "" {
		t.Fatalf("clone data mismatch (-want +got):\n%s", diff)
	}
	if c.Metadata()["k"] != "v" {
		t.Fatal("clone lost metadata")
	}
}

func TestSlice(t *testing.T) {
	ax := mustUniform(t, 0, 1, 4)
	s, _ := FromRows(ax, [][]float64{{0, 1, 2, 3}, {10, 11, 12, 13}})
	got, err := s.Slice(1, 3)
	if err != nil {
		t.Fatalf("Slice() error = %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2, 11, 12}, got); diff != "" {
		t.Fatalf("Slice() mismatch (-want +got):\n%s", diff)
	}
	empty, err := s.Slice(2, 2)
	if err != nil || len(empty) != 0 {
		t.Fatalf("Slice(2,2) = %v, %v; want empty", empty, err)
	}
	if _, err := s.Slice(-1, 2); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := s.Slice(3, 5); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestWith(t *testing.T) {
	ax := mustUniform(t, 0, 1, 2)
	s, _ := New(ax, []float64{1, 2, 3, 4}, WithNavigation(2), WithMetadata(Metadata{"k": "v"}))
	ax3 := mustUniform(t, 0, 1, 3)
	w, err := s.With(ax3, make([]float64, 6))
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if w.Axis().Len() != 3 || w.Rows() != 2 || w.Metadata()["k"] != "v" {
		t.Fatalf("With() = axis %d rows %d meta %v", w.Axis().Len(), w.Rows(), w.Metadata())
	}
	if _, err := s.With(ax3, make([]float64, 5)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
}

func TestIntegrate(t *testing.T) {
	ax := mustUniform(t, 0, 0.5, 5)
	s, _ := FromRows(ax, [][]float64{{1, 1, 1, 1, 1}, {0, 1, 2, 3, 4}})
	got := s.Integrate()
	want := []float64{2, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Integrate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
