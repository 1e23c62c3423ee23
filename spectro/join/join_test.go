package join

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectro/axis"
	"github.com/cwbudde/algo-spectro/spectro/interp"
	"github.com/cwbudde/algo-spectro/spectro/spectrum"
)

func uniformSpectrum(t *testing.T, offset, scale float64, size int, rows ...[]float64) *spectrum.Spectrum {
	t.Helper()
	ax, err := axis.NewUniform(offset, scale, size, axis.WithUnit(axis.Nanometre))
	if err != nil {
		t.Fatalf("NewUniform() error = %v", err)
	}
	s, err := spectrum.FromRows(ax, rows)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return s
}

func samplesSpectrum(t *testing.T, samples []float64, rows ...[]float64) *spectrum.Spectrum {
	t.Helper()
	ax, err := axis.NewNonUniform(samples)
	if err != nil {
		t.Fatalf("NewNonUniform() error = %v", err)
	}
	s, err := spectrum.FromRows(ax, rows)
	if err != nil {
		t.Fatalf("FromRows() error = %v", err)
	}
	return s
}

func TestJoinUniformConstantLevels(t *testing.T) {
	a := uniformSpectrum(t, 500, 1, 101, testutil.Constant(10, 101))
	b := uniformSpectrum(t, 580, 1, 121, testutil.Constant(20, 121))

	// Only 10 samples of a lie right of the seam and r must be strictly less, so 9 is the largest r.
	for _, average := range []bool{false, true} {
		out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(9), WithAverage(average))
		if err != nil {
			t.Fatalf("average=%v: Join() error = %v", average, err)
		}
		seam := report.Seams[0]
		if seam.Center != 590 || seam.Ind1 != 90 || seam.Ind2 != 10 {
			t.Fatalf("seam = %+v", seam)
		}
		testutil.RequireSliceNearlyEqual(t, seam.Factors, []float64{0.5}, 1e-12)

		ax := out.Axis()
		if !ax.IsUniform() || ax.Len() != 200 {
			t.Fatalf("axis uniform=%v len=%d, want uniform 200", ax.IsUniform(), ax.Len())
		}
		if axis.Low(ax) != 500 || axis.High(ax) != 699 {
			t.Fatalf("axis range [%v, %v], want [500, 699]", axis.Low(ax), axis.High(ax))
		}
		testutil.RequireFinite(t, out.Data())
		testutil.RequireAllNear(t, out.Data(), 10, 1e-12)
	}
}

func TestJoinRangeTooLarge(t *testing.T) {
	a := uniformSpectrum(t, 500, 1, 101, testutil.Constant(10, 101))
	b := uniformSpectrum(t, 580, 1, 121, testutil.Constant(20, 121))

	// 100 - 90 = 10 samples right of the seam, which must exceed r.
	for _, r := range []int{10, 11, 50} {
		if _, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(r)); !errors.Is(err, ErrRange) {
			t.Fatalf("r=%d: err = %v, want ErrRange", r, err)
		}
	}
}

func TestJoinRangeWindowLeavesNextAxis(t *testing.T) {
	a := uniformSpectrum(t, 500, 1, 201, testutil.Constant(1, 201))
	b := uniformSpectrum(t, 690, 5, 100, testutil.Constant(1, 100))
	// center 695: ind1 = 195 leaves room, but ind2 = 1 and a window of 2
	// would start before b.
	if _, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(2)); !errors.Is(err, ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
}

func TestJoinNotOverlapping(t *testing.T) {
	a := uniformSpectrum(t, 500, 1, 101, testutil.Constant(1, 101))
	b := uniformSpectrum(t, 580, 1, 121, testutil.Constant(1, 121))
	c := uniformSpectrum(t, 701, 1, 50, testutil.Constant(1, 50))

	_, err := Join([]*spectrum.Spectrum{a, b, c}, WithHalfWindow(5))
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("err = %v, want ErrOverlap", err)
	}
	if !strings.Contains(err.Error(), "not overlapping") {
		t.Fatalf("error message %q", err)
	}
}

func TestJoinValidation(t *testing.T) {
	if _, err := Join(nil); !errors.Is(err, ErrNoSpectra) {
		t.Fatalf("err = %v, want ErrNoSpectra", err)
	}
	a := uniformSpectrum(t, 0, 1, 10, testutil.Constant(1, 10))
	b := uniformSpectrum(t, 5, 1, 10, testutil.Constant(1, 10), testutil.Constant(1, 10))
	if _, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(1)); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if _, err := Join([]*spectrum.Spectrum{a, nil}); !errors.Is(err, ErrNoSpectra) {
		t.Fatalf("err = %v, want ErrNoSpectra", err)
	}
	if _, err := Join([]*spectrum.Spectrum{a}, WithKind(interp.Kind(42))); !errors.Is(err, interp.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestJoinSingleSpectrumIsCopy(t *testing.T) {
	a := uniformSpectrum(t, 0, 1, 4, []float64{1, 2, 3, 4})
	out, err := Join([]*spectrum.Spectrum{a})
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if diff := cmp.Diff(a.Data(), out.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestJoinRecoversKnownScaling(t *testing.T) {
	f := func(x []float64) []float64 {
		g := testutil.Gaussian(x, 100, 650, 80)
		for i := range g {
			g[i] += 5
		}
		return g
	}
	axA, _ := axis.NewUniform(400, 0.5, 601)
	axB, _ := axis.NewUniform(600, 0.5, 601)
	rowA := f(axA.Values())
	rowB := f(axB.Values())
	for i := range rowB {
		rowB[i] *= 3
	}
	a, _ := spectrum.New(axA, rowA, spectrum.WithMetadata(spectrum.Metadata{"title": "first"}))
	b, _ := spectrum.New(axB, rowB, spectrum.WithMetadata(spectrum.Metadata{"title": "second"}))

	for _, kind := range []interp.Kind{interp.SLinear, interp.Cubic, interp.PCHIP} {
		out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(20), WithKind(kind))
		if err != nil {
			t.Fatalf("%s: Join() error = %v", kind, err)
		}
		testutil.RequireSliceNearlyEqual(t, report.Seams[0].Factors, []float64{1.0 / 3}, 1e-12)
		if out.Axis().Len() != 1000 {
			t.Fatalf("%s: len = %d, want 1000", kind, out.Axis().Len())
		}
		testutil.RequireSliceNearlyEqual(t, out.Data(), f(out.Axis().Values()), 1e-9)
		if out.Metadata()["title"] != "first" {
			t.Fatalf("metadata = %v, want first spectrum's", out.Metadata())
		}
	}

	// Inputs are untouched.
	testutil.RequireSliceNearlyEqual(t, a.Data(), rowA, 0)
	testutil.RequireSliceNearlyEqual(t, b.Data(), rowB, 0)
}

func TestJoinNavigationRows(t *testing.T) {
	a := uniformSpectrum(t, 0, 1, 50, testutil.Constant(1, 50), testutil.Constant(2, 50))
	b := uniformSpectrum(t, 30, 1, 50, testutil.Constant(2, 50), testutil.Constant(8, 50))
	out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(5))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, report.Seams[0].Factors, []float64{0.5, 0.25}, 1e-12)
	if out.Rows() != 2 {
		t.Fatalf("rows = %d, want 2", out.Rows())
	}
	testutil.RequireAllNear(t, out.Row(0), 1, 1e-12)
	testutil.RequireAllNear(t, out.Row(1), 2, 1e-12)
}

func TestJoinUniformDifferentSteps(t *testing.T) {
	a := uniformSpectrum(t, 500, 1, 101, testutil.Constant(10, 101))
	b := uniformSpectrum(t, 560, 2, 71, testutil.Constant(5, 71))
	for _, average := range []bool{false, true} {
		out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(5), WithAverage(average))
		if err != nil {
			t.Fatalf("average=%v: Join() error = %v", average, err)
		}
		if s := report.Seams[0]; s.Ind1 != 80 || s.Ind2 != 10 {
			t.Fatalf("seam = %+v, want ind1=80 ind2=10", s)
		}
		if out.Axis().Len() != 200 {
			t.Fatalf("len = %d, want 200", out.Axis().Len())
		}
		testutil.RequireAllNear(t, out.Data(), 10, 1e-12)
	}
}

func TestJoinAveragedSeamBlends(t *testing.T) {
	// b is not a scaled copy of a, so the band shows the mean of both.
	n := 101
	rowA := testutil.Constant(10, n)
	rowB := make([]float64, 121)
	for i := range rowB {
		if i%2 == 0 {
			rowB[i] = 12
		} else {
			rowB[i] = 8
		}
	}
	a := uniformSpectrum(t, 500, 1, n, rowA)
	b := uniformSpectrum(t, 580, 1, 121, rowB)
	out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(4), WithAverage(true))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	f := report.Seams[0].Factors[0]
	data := out.Data()
	// Left of the band the first spectrum is kept verbatim.
	testutil.RequireAllNear(t, data[:87], 10, 0)
	// In the band (indices 87..93) each value is the mean of 10 and scaled b.
	for i := 87; i < 94; i++ {
		bi := i - 80
		want := (10 + f*rowB[bi]) / 2
		if math.Abs(data[i]-want) > 1e-12 {
			t.Fatalf("data[%d] = %v, want %v", i, data[i], want)
		}
	}
	// Right of the band only b remains.
	for i := 94; i < len(data); i++ {
		if want := f * rowB[i-80]; math.Abs(data[i]-want) > 1e-12 {
			t.Fatalf("data[%d] = %v, want %v", i, data[i], want)
		}
	}
}

func TestJoinNonUniformConcatenation(t *testing.T) {
	a := samplesSpectrum(t, []float64{1.0, 1.5, 2.2, 3.0, 3.8, 4.5}, []float64{1, 2, 3, 4, 5, 6})
	b := samplesSpectrum(t, []float64{3.5, 4.0, 4.5, 5.0, 5.6}, []float64{10, 11, 12, 13, 14})

	out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(0))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	seam := report.Seams[0]
	if seam.Ind1 != 4 || seam.Ind2 != 1 {
		t.Fatalf("seam = %+v, want ind1=4 ind2=1", seam)
	}
	wantAxis := []float64{1.0, 1.5, 2.2, 3.0, 4.0, 4.5, 5.0, 5.6}
	if diff := cmp.Diff(wantAxis, out.Axis().Values()); diff != "" {
		t.Fatalf("axis mismatch (-want +got):\n%s", diff)
	}
	if out.Axis().Len() != seam.Ind1+(b.Axis().Len()-seam.Ind2) {
		t.Fatalf("len = %d", out.Axis().Len())
	}
	if diff := cmp.Diff([]float64{1, 2, 3, 4, 11, 12, 13, 14}, out.Data()); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	if _, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(1)); !errors.Is(err, ErrRange) {
		t.Fatalf("r=1: err = %v, want ErrRange", err)
	}
}

func TestJoinNonUniformAverage(t *testing.T) {
	xa := testutil.Linspace(0, 20, 21)
	xb := testutil.Linspace(10.5, 30.5, 21)
	a := samplesSpectrum(t, xa, testutil.Constant(4, 21))
	b := samplesSpectrum(t, xb, testutil.Constant(2, 21))

	for _, average := range []bool{false, true} {
		out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(3), WithAverage(average))
		if err != nil {
			t.Fatalf("average=%v: Join() error = %v", average, err)
		}
		if s := report.Seams[0]; s.Ind1 != 15 || s.Ind2 != 5 {
			t.Fatalf("seam = %+v, want ind1=15 ind2=5", s)
		}
		if out.Axis().IsUniform() || out.Axis().Len() != 31 {
			t.Fatalf("axis uniform=%v len=%d, want non-uniform 31", out.Axis().IsUniform(), out.Axis().Len())
		}
		testutil.RequireIncreasing(t, out.Axis().Values())
		testutil.RequireFinite(t, out.Data())
		testutil.RequireAllNear(t, out.Data(), 4, 1e-12)
	}
}

func TestJoinFunctionalAccumulator(t *testing.T) {
	x, _ := axis.NewUniform(0, 1, 30)
	fa, err := axis.NewFunctional(x, func(v float64) float64 { return 100 + v*v/10 })
	if err != nil {
		t.Fatalf("NewFunctional() error = %v", err)
	}
	a, _ := spectrum.New(fa, testutil.Constant(3, 30))
	b := samplesSpectrum(t, testutil.Linspace(150, 200, 51), testutil.Constant(1, 51))

	out, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(2))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if _, ok := out.Axis().(*axis.NonUniform); !ok {
		t.Fatalf("axis type %T, want *axis.NonUniform", out.Axis())
	}
	testutil.RequireIncreasing(t, out.Axis().Values())
	testutil.RequireAllNear(t, out.Data(), 3, 1e-12)
}

func TestJoinUniformWithNonUniformNext(t *testing.T) {
	xa := testutil.Linspace(500, 600, 101)
	xb := testutil.JitteredSamples(3, 580, 1, 0.2, 121)
	a := uniformSpectrum(t, 500, 1, 101, xa)
	b := samplesSpectrum(t, xb, xb)

	out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b}, WithHalfWindow(5))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if !out.Axis().IsUniform() {
		t.Fatal("uniform accumulator lost its grid")
	}
	seam := report.Seams[0]
	// The seam sample of the next spectrum never lies left of the accumulator's.
	if xb[seam.Ind2] < xa[seam.Ind1] {
		t.Fatalf("seam B[%d]=%v < A[%d]=%v", seam.Ind2, xb[seam.Ind2], seam.Ind1, xa[seam.Ind1])
	}

	got := out.Data()
	x := out.Axis().Values()
	testutil.RequireFinite(t, got)

	// Left of the seam the accumulator is untouched.
	head, err := testutil.MaxAbsDiff(got[:seam.Ind1+1], x[:seam.Ind1+1])
	if err != nil || head != 0 {
		t.Fatalf("head differs by %v (err %v)", head, err)
	}
	// Right of it, B holds y = x, so linear interpolation yields the scaled
	// coordinate, clamped to the samples of B from the seam on.
	lo, hi := xb[seam.Ind2], xb[len(xb)-1]
	want := make([]float64, len(x)-seam.Ind1-1)
	for i := range want {
		want[i] = seam.Factors[0] * math.Min(math.Max(x[seam.Ind1+1+i], lo), hi)
	}
	tail, err := testutil.MaxAbsDiff(got[seam.Ind1+1:], want)
	if err != nil || tail > 1e-9 {
		t.Fatalf("tail differs by %v (err %v)", tail, err)
	}
}

func TestJoinThreeSpectra(t *testing.T) {
	a := uniformSpectrum(t, 400, 1, 201, testutil.Constant(1, 201))
	b := uniformSpectrum(t, 550, 1, 201, testutil.Constant(2, 201))
	c := uniformSpectrum(t, 700, 1, 201, testutil.Constant(6, 201))

	out, report, err := JoinWithReport([]*spectrum.Spectrum{a, b, c}, WithHalfWindow(10))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if len(report.Seams) != 2 {
		t.Fatalf("seams = %d, want 2", len(report.Seams))
	}
	testutil.RequireSliceNearlyEqual(t, report.Seams[0].Factors, []float64{0.5}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, report.Seams[1].Factors, []float64{1.0 / 6}, 1e-12)
	if axis.Low(out.Axis()) != 400 || axis.High(out.Axis()) != 899 {
		t.Fatalf("range [%v, %v], want [400, 899]", axis.Low(out.Axis()), axis.High(out.Axis()))
	}
	testutil.RequireAllNear(t, out.Data(), 1, 1e-12)
}

func TestJoinInjectedInterpolator(t *testing.T) {
	calls := 0
	ip := interp.Func(func(x, y, at []float64) ([]float64, error) {
		calls++
		return testutil.Constant(-1, len(at)), nil
	})
	a := uniformSpectrum(t, 0, 1, 50, testutil.Constant(1, 50))
	b := uniformSpectrum(t, 30, 1, 50, testutil.Constant(1, 50))
	out, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(3), WithInterpolator(ip))
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if calls != 1 {
		t.Fatalf("interpolator calls = %d, want 1", calls)
	}
	data := out.Data()
	if data[40] != 1 || data[41] != -1 {
		t.Fatalf("seam values %v %v, want 1 then -1", data[40], data[41])
	}
}

func TestJoinLogsSeams(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := uniformSpectrum(t, 0, 1, 50, testutil.Constant(1, 50))
	b := uniformSpectrum(t, 30, 1, 50, testutil.Constant(1, 50))
	if _, err := Join([]*spectrum.Spectrum{a, b}, WithHalfWindow(3), WithLogger(logger)); err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if !strings.Contains(buf.String(), "joined spectrum") || !strings.Contains(buf.String(), "ind1=40") {
		t.Fatalf("log output %q", buf.String())
	}
}

func TestScalingFactorsIgnoresZeros(t *testing.T) {
	ax, _ := axis.NewUniform(0, 1, 4)
	a, _ := spectrum.FromRows(ax, [][]float64{{2, 2, 2, 2}, {1, 1, 1, 1}})
	b, _ := spectrum.FromRows(ax, [][]float64{{1, 0, 4, 0}, {0, 0, 0, 0}})
	got, err := ScalingFactors(a, b, 2, 2, 2)
	if err != nil {
		t.Fatalf("ScalingFactors() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1.25, math.NaN()}, 1e-12)

	ones, _ := ScalingFactors(a, b, 2, 2, 0)
	testutil.RequireSliceNearlyEqual(t, ones, []float64{1, 1}, 0)

	if _, err := ScalingFactors(a, b, 1, 2, 2); !errors.Is(err, ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
}
