package units_test

import (
	"errors"
	"math"
	"testing"

	"github.com/USA-RedDragon/geodist-server/internal/units"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	if units.Classify(units.Miles) != units.Linear {
		t.Errorf("expected miles to be linear")
	}
	if units.Classify(units.Degrees) != units.NonLinear {
		t.Errorf("expected degrees to be non-linear")
	}
	if units.Classify(nil) != units.Unknown {
		t.Errorf("expected nil unit to be unknown")
	}
}

func TestFactorFromMeters(t *testing.T) {
	t.Parallel()

	factor, err := units.FactorFromMeters(units.Kilometers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(factor-0.001) > 1e-15 {
		t.Errorf("expected 0.001 kilometers per meter, got %v", factor)
	}

	factor, err = units.FactorFromMeters(units.Feet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(factor-3.28084) > 1e-5 {
		t.Errorf("expected ~3.28084 feet per meter, got %v", factor)
	}

	_, err = units.FactorFromMeters(units.LinearUnit("furlongs"))
	if !errors.Is(err, units.ErrUnknownLinearUnit) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMilesRoundTrip(t *testing.T) {
	t.Parallel()

	const meters = 123456.789
	toMiles, err := units.FactorFromMeters(units.Miles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toMeters, err := units.FactorToMeters(units.Miles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := meters * toMiles * toMeters
	if math.Abs(back-meters) > 1e-9 {
		t.Errorf("expected %v meters after round trip, got %v", meters, back)
	}
}

func TestAngleConversion(t *testing.T) {
	t.Parallel()

	if math.Abs(units.DegreesToRadians(180)-math.Pi) > 1e-15 {
		t.Errorf("expected 180 degrees to be pi radians")
	}
	if math.Abs(units.RadiansToDegrees(math.Pi)-180) > 1e-12 {
		t.Errorf("expected pi radians to be 180 degrees")
	}
	minutes, err := units.ConvertAngle(units.DegreesToRadians(1), units.ArcMinutes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(minutes-60) > 1e-9 {
		t.Errorf("expected 60 arc minutes, got %v", minutes)
	}
}

func TestMetersPerDecimalDegree(t *testing.T) {
	t.Parallel()

	equator := units.MetersPerDecimalDegree(0)
	if math.Round(equator) != 110574 {
		t.Errorf("expected 110574 meters per degree at the equator, got %f", equator)
	}
	pole := units.MetersPerDecimalDegree(90)
	if math.Round(pole) != 111694 {
		t.Errorf("expected 111694 meters per degree at the pole, got %f", pole)
	}
	if units.MetersPerDecimalDegree(-45) != units.MetersPerDecimalDegree(45) {
		t.Errorf("expected meters per degree to be symmetric about the equator")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := map[string]units.Unit{
		"mi":             units.Miles,
		" KM ":           units.Kilometers,
		"nautical-miles": units.NauticalMiles,
		"deg":            units.Degrees,
		"Radians":        units.Radians,
	}
	for name, want := range cases {
		got, err := units.Parse(name)
		if err != nil {
			t.Errorf("unexpected error parsing %q: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("expected %q to parse as %v, got %v", name, want, got)
		}
	}

	if _, err := units.Parse("parsecs"); !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("unexpected error: %v", err)
	}
}
