package geo_test

import (
	"math"
	"testing"

	"github.com/USA-RedDragon/geodist-server/internal/geo"
	"github.com/USA-RedDragon/geodist-server/internal/units"
)

type coords struct {
	lat float64
	lng float64
}

var (
	devonTower      = coords{35.4669626, -97.5280147}
	anthemBrewing   = coords{35.4674537, -97.5331325}
	willRogers      = coords{35.3954731, -97.6065239}
	ouCampus        = coords{35.3956022, -97.9258855}
	rocklahoma      = coords{36.3638353, -95.2886689}
	gatewayArch     = coords{38.6251432, -90.1970501}
	statueOfLiberty = coords{40.6892494, -74.0445004}
	reykjavik       = coords{64.1334904, -21.8524423}
	tokyo           = coords{35.5092405, 139.7698121}
	losAngeles      = coords{34.0522, -118.2437}
	newYork         = coords{40.7128, -74.0060}
)

type landmarkCase struct {
	name        string
	from        coords
	to          coords
	mean        float64
	ellipsoidal float64
}

var landmarkCases = []landmarkCase{
	{"Devon Tower to Anthem Brewing", devonTower, anthemBrewing, 466, 467},
	{"Devon Tower to Will Rogers", devonTower, willRogers, 10644, 10667},
	{"OU Campus to Rocklahoma", ouCampus, rocklahoma, 260284, 260836},
	{"Gateway Arch to Statue of Liberty", gatewayArch, statueOfLiberty, 1397505, 1399270},
	{"Reykjavík to Tokyo", reykjavik, tokyo, 8820513, 8810742},
	{"Reykjavík to Gateway Arch", reykjavik, gatewayArch, 5181228, 5173633},
	{"Tokyo to Statue of Liberty", tokyo, statueOfLiberty, 10845592, 10863160},
}

func TestDistanceMeanRadius(t *testing.T) {
	t.Parallel()

	for _, tc := range landmarkCases {
		dist, err := geo.Distance(tc.from.lat, tc.from.lng, tc.to.lat, tc.to.lng, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Round(dist) != tc.mean {
			t.Errorf("expected %.0f meters for %s, got %f", tc.mean, tc.name, dist)
		}

		// Reverse
		dist, err = geo.Distance(tc.to.lat, tc.to.lng, tc.from.lat, tc.from.lng, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Round(dist) != tc.mean {
			t.Errorf("expected %.0f meters for reverse %s, got %f", tc.mean, tc.name, dist)
		}
	}
}

func TestDistanceEllipsoidal(t *testing.T) {
	t.Parallel()

	for _, tc := range landmarkCases {
		dist, err := geo.DistanceEllipsoidal(tc.from.lat, tc.from.lng, tc.to.lat, tc.to.lng, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Round(dist) != tc.ellipsoidal {
			t.Errorf("expected %.0f meters for %s, got %f", tc.ellipsoidal, tc.name, dist)
		}

		// Reverse
		dist, err = geo.DistanceEllipsoidal(tc.to.lat, tc.to.lng, tc.from.lat, tc.from.lng, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Round(dist) != tc.ellipsoidal {
			t.Errorf("expected %.0f meters for reverse %s, got %f", tc.ellipsoidal, tc.name, dist)
		}
	}
}

func TestLosAngelesToNewYork(t *testing.T) {
	t.Parallel()

	miles, err := geo.Distance(losAngeles.lat, losAngeles.lng, newYork.lat, newYork.lng, units.Miles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(miles-2451) > 20 {
		t.Errorf("expected about 2451 miles between Los Angeles and New York, got %f", miles)
	}

	between := geo.DistanceBetween(geo.NewCoordinate(losAngeles.lat, losAngeles.lng), geo.NewCoordinate(newYork.lat, newYork.lng))
	if between != miles {
		t.Errorf("expected DistanceBetween to match Distance in miles, got %f and %f", between, miles)
	}
}

func TestSymmetry(t *testing.T) {
	t.Parallel()

	all := []coords{devonTower, anthemBrewing, willRogers, ouCampus, rocklahoma, gatewayArch, statueOfLiberty, reykjavik, tokyo, {0, 0}, {0, 180}, {-33.8688, 151.2093}}
	for _, a := range all {
		for _, b := range all {
			for _, strategy := range []geo.Strategy{geo.StrategyMeanRadius, geo.StrategyEllipsoidal} {
				ab, err := geo.Compute(strategy, geo.NewCoordinate(a.lat, a.lng), geo.NewCoordinate(b.lat, b.lng), units.Kilometers)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				ba, err := geo.Compute(strategy, geo.NewCoordinate(b.lat, b.lng), geo.NewCoordinate(a.lat, a.lng), units.Kilometers)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ab != ba {
					t.Errorf("expected %s distance %v -> %v to equal reverse, got %f and %f", strategy, a, b, ab, ba)
				}
				if ab < 0 {
					t.Errorf("expected non-negative %s distance %v -> %v, got %f", strategy, a, b, ab)
				}
			}
		}
	}
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	for _, c := range []coords{devonTower, tokyo, {0, 0}, {90, 0}, {-90, 45}} {
		if d := geo.AngularSeparationDegrees(c.lat, c.lng, c.lat, c.lng); d != 0 {
			t.Errorf("expected zero degrees for identical points, got %v", d)
		}
		if d := geo.AngularSeparationRadians(c.lat, c.lng, c.lat, c.lng); d != 0 {
			t.Errorf("expected zero radians for identical points, got %v", d)
		}
		if d, err := geo.Distance(c.lat, c.lng, c.lat, c.lng, units.Feet); err != nil || d != 0 {
			t.Errorf("expected zero feet for identical points, got %v (%v)", d, err)
		}
		if d, err := geo.DistanceEllipsoidal(c.lat, c.lng, c.lat, c.lng, units.Feet); err != nil || d != 0 {
			t.Errorf("expected zero feet for identical points, got %v (%v)", d, err)
		}
	}
}

func TestAntipodal(t *testing.T) {
	t.Parallel()

	deg := geo.AngularSeparationDegrees(0, 0, 0, 180)
	if math.IsNaN(deg) {
		t.Fatal("expected a number for antipodal points, got NaN")
	}
	if math.Abs(deg-180) > 1e-9 {
		t.Errorf("expected 180 degrees for antipodal points, got %v", deg)
	}

	// Poles are antipodal too, and land exactly on the clamp boundary.
	deg = geo.AngularSeparationDegrees(90, 0, -90, 0)
	if math.IsNaN(deg) || math.Abs(deg-180) > 1e-9 {
		t.Errorf("expected 180 degrees pole to pole, got %v", deg)
	}

	rad := geo.AngularSeparationRadians(0, 0, 0, 180)
	if math.Abs(rad-math.Pi) > 1e-12 {
		t.Errorf("expected pi radians for antipodal points, got %v", rad)
	}
}

func TestNearlyIdenticalPoints(t *testing.T) {
	t.Parallel()

	deg := geo.AngularSeparationDegrees(45, 45, 45, 45+1e-12)
	if math.IsNaN(deg) || deg < 0 {
		t.Errorf("expected a small non-negative angle, got %v", deg)
	}
	rad := geo.AngularSeparationRadians(45, 45, 45, 45+1e-12)
	if math.IsNaN(rad) || rad <= 0 {
		t.Errorf("expected a small positive angle, got %v", rad)
	}
}

func TestCrossStrategyConsistency(t *testing.T) {
	t.Parallel()

	// ~1km apart at a spread of latitudes.
	for _, lat := range []float64{0, 20, 35.4669626, 51.5, 70} {
		from := geo.NewCoordinate(lat, 10)
		to := geo.NewCoordinate(lat+0.006, 10.004)
		mean, err := geo.Compute(geo.StrategyMeanRadius, from, to, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ellipsoidal, err := geo.Compute(geo.StrategyEllipsoidal, from, to, units.Meters)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(mean-ellipsoidal)/ellipsoidal > 0.01 {
			t.Errorf("expected strategies to agree within 1%% at latitude %v, got %f and %f", lat, mean, ellipsoidal)
		}
	}
}

func TestEarthRadiusAtLatitude(t *testing.T) {
	t.Parallel()

	if r := geo.EarthRadiusAtLatitude(0); math.Abs(r-6378137) > 1e-6 {
		t.Errorf("expected equatorial radius 6378137, got %f", r)
	}
	if r := geo.EarthRadiusAtLatitude(math.Pi / 2); math.Abs(r-6356752.3) > 1e-3 {
		t.Errorf("expected polar radius 6356752.3, got %f", r)
	}
	if north, south := geo.EarthRadiusAtLatitude(0.6), geo.EarthRadiusAtLatitude(-0.6); north != south {
		t.Errorf("expected radius to be symmetric about the equator, got %f and %f", north, south)
	}
}

func TestEarthRadiusConstants(t *testing.T) {
	t.Parallel()

	if math.Round(geo.EarthRadiusMeters) != 6372795 {
		t.Errorf("expected mean radius of 6372795 meters, got %f", geo.EarthRadiusMeters)
	}
}

func TestEuclidean(t *testing.T) {
	t.Parallel()

	if d := geo.Euclidean(0, 0, 3, 4); d != 5 {
		t.Errorf("expected 5, got %v", d)
	}
	if d := geo.Euclidean(3, 4, 0, 0); d != 5 {
		t.Errorf("expected 5 in reverse, got %v", d)
	}
	if d := geo.Euclidean(-1.5, 2, -1.5, 2); d != 0 {
		t.Errorf("expected 0, got %v", d)
	}
}
