// SPDX-License-Identifier: MIT

package rotor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cellgate/lattice"
	"github.com/katalvlaran/cellgate/matrix"
	"github.com/katalvlaran/cellgate/rotor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// pt builds a normalized Object point or fails the test.
func pt(t testing.TB, c ...float64) lattice.Point {
	t.Helper()
	require.Len(t, c, 4)
	p, err := lattice.NewPoint([4]float64{c[0], c[1], c[2], c[3]}, lattice.Object)
	require.NoError(t, err)

	return p
}

// apply rotates p by r or fails the test.
func apply(t testing.TB, r rotor.Rotor, p lattice.Point) lattice.Point {
	t.Helper()
	out, err := r.Apply(p)
	require.NoError(t, err)

	return out
}

func TestWedge(t *testing.T) {
	e0 := [4]float64{1, 0, 0, 0}
	e1 := [4]float64{0, 1, 0, 0}
	e3 := [4]float64{0, 0, 0, 1}

	assert.Equal(t, rotor.Bivector{1, 0, 0, 0, 0, 0}, rotor.Wedge(e0, e1))
	assert.Equal(t, rotor.Bivector{-1, 0, 0, 0, 0, 0}, rotor.Wedge(e1, e0))
	assert.Equal(t, rotor.Bivector{0, 0, 0, 0, 1, 0}, rotor.Wedge(e1, e3))

	a := [4]float64{1, 2, 3, 4}
	assert.True(t, rotor.Wedge(a, a).IsZero())

	b := [4]float64{-2, 0.5, 7, 1}
	ab, ba := rotor.Wedge(a, b), rotor.Wedge(b, a)
	for k := range ab {
		assert.Equal(t, ab[k], -ba[k], "component %d not antisymmetric", k)
	}
}

func TestBivector_Normalize(t *testing.T) {
	unit, ok := rotor.Bivector{3, 0, 0, 0, 0, 4}.Normalize()
	require.True(t, ok)
	assert.InDelta(t, 1.0, unit.Magnitude(), 1e-15)
	assert.InDelta(t, 0.6, unit[0], 1e-15)

	_, ok = rotor.Bivector{1e-12}.Normalize()
	assert.False(t, ok)
	_, ok = rotor.Bivector{math.NaN()}.Normalize()
	assert.False(t, ok)
}

// TestFromPoints_Identity checks that equal points give the identity rotor.
func TestFromPoints_Identity(t *testing.T) {
	v := pt(t, 0.5, -0.5, 0.5, 0.5)
	r := rotor.FromPoints(v, v)

	assert.True(t, r.Equal(rotor.Identity(), 1e-12))
	assert.True(t, r.IsValid(1e-10))
	assert.Zero(t, r.Angle())

	q := pt(t, 1, 2, 3, 4)
	assert.True(t, apply(t, r, q).Equal(q, 1e-12))
}

// TestFromPoints_CarriesSourceToTarget covers every ordered pair of lattice vertices.
func TestFromPoints_CarriesSourceToTarget(t *testing.T) {
	lat, err := lattice.Canonical()
	require.NoError(t, err)
	pts := lat.Points()

	for i, v1 := range pts {
		for j, v2 := range pts {
			r := rotor.FromPoints(v1, v2)
			require.True(t, r.IsValid(1e-10), "rotor %d→%d not unit: %v", i, j, r)
			got := apply(t, r, v1)
			require.Less(t, got.Distance(v2), tol, "rotor %d→%d misses target", i, j)
		}
	}
}

func TestFromPoints_GenericPairs(t *testing.T) {
	cases := []struct {
		name   string
		v1, v2 [4]float64
	}{
		{"orthogonal axes", [4]float64{1, 0, 0, 0}, [4]float64{0, 1, 0, 0}},
		{"obtuse", [4]float64{1, 2, 3, 4}, [4]float64{-4, 1, -2, 0.5}},
		{"acute", [4]float64{0.3, -0.1, 0.9, 0.2}, [4]float64{0.31, -0.1, 0.88, 0.25}},
		{"nearly antipodal", [4]float64{1, 1, 0, 0}, [4]float64{-1, -1, 1e-4, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v1, v2 := pt(t, tc.v1[:]...), pt(t, tc.v2[:]...)
			r := rotor.FromPoints(v1, v2)

			assert.True(t, r.IsValid(1e-10))
			assert.GreaterOrEqual(t, r.Scalar(), 0.0)
			assert.InDelta(t, math.Acos(v1.Dot(v2)), r.Angle(), 1e-7)
			assert.Less(t, apply(t, r, v1).Distance(v2), tol)
		})
	}
}

// TestFromPoints_Antipodal checks the fallback plane and that the rotor maps v to −v.
func TestFromPoints_Antipodal(t *testing.T) {
	e0 := pt(t, 1, 0, 0, 0)
	r := rotor.FromPoints(e0, e0.Neg())

	plane, ok := r.Plane()
	require.True(t, ok)
	assert.Equal(t, rotor.Bivector{1, 0, 0, 0, 0, 0}, plane, "expected e0∧e1")
	assert.InDelta(t, math.Pi, r.Angle(), 1e-12)
	assert.True(t, r.IsValid(1e-10))
	assert.Less(t, apply(t, r, e0).Distance(e0.Neg()), tol)

	// for e1 the lowest usable axis is e0.
	e1 := pt(t, 0, 1, 0, 0)
	plane, ok = rotor.FromPoints(e1, e1.Neg()).Plane()
	require.True(t, ok)
	assert.Equal(t, rotor.Bivector{-1, 0, 0, 0, 0, 0}, plane, "expected e1∧e0")

	v := pt(t, 0.5, 0.5, -0.5, 0.5)
	assert.Less(t, apply(t, rotor.FromPoints(v, v.Neg()), v).Distance(v.Neg()), tol)
}

// TestApply_FixesOrthogonalPlane checks that vectors orthogonal to the plane stay put.
// TestFromPoints_NearlyAntipodal checks pairs a few δ short of antipodal,
// where the plane must still contain the source exactly.
func TestFromPoints_NearlyAntipodal(t *testing.T) {
	a := pt(t, 0.3, -0.7, 0.5, 0.4)
	ac := a.Coords()
	for _, delta := range []float64{1e-6, 1e-7, 1e-8, 1e-9} {
		b := pt(t, -ac[0]+delta, -ac[1], -ac[2]+delta, -ac[3])
		r := rotor.FromPoints(a, b)
		require.True(t, r.IsValid(lattice.Epsilon), "δ=%g", delta)
		assert.InDelta(t, math.Pi, r.Angle(), 10*delta, "δ=%g", delta)

		got := apply(t, r, a)
		assert.LessOrEqual(t, got.Distance(b), 1e-12, "δ=%g", delta)
		back := apply(t, r.Reverse(), b)
		assert.LessOrEqual(t, back.Distance(a), 1e-12, "δ=%g", delta)
	}
}

func TestApply_FixesOrthogonalPlane(t *testing.T) {
	r := rotor.FromPoints(pt(t, 1, 0, 0, 0), pt(t, 0, 1, 0, 0))
	for _, c := range [][4]float64{{0, 0, 1, 0}, {0, 0, 0, 1}, {0, 0, 1, -1}} {
		p := pt(t, c[:]...)
		assert.Less(t, apply(t, r, p).Distance(p), tol)
	}

	p := pt(t, 1, 1, 1, 1)
	assert.InDelta(t, 1.0, apply(t, r, p).Norm(), 1e-12)
}

func TestApply_KeepsKind(t *testing.T) {
	p, err := lattice.NewPoint([4]float64{1, 0, 0, 0}, lattice.Relation)
	require.NoError(t, err)
	r := rotor.FromPoints(pt(t, 1, 0, 0, 0), pt(t, 0, 0, 1, 0))

	assert.Equal(t, lattice.Relation, apply(t, r, p).Kind())
}

func TestReverse_UndoesRotation(t *testing.T) {
	r := rotor.FromPoints(pt(t, 1, 2, 3, 4), pt(t, 4, -3, 2, 1))
	back := r.Reverse()

	for _, c := range [][4]float64{{1, 0, 0, 0}, {0.2, -0.7, 0.1, 0.4}, {-1, 1, -1, 1}} {
		p := pt(t, c[:]...)
		assert.Less(t, apply(t, back, apply(t, r, p)).Distance(p), tol)
	}
}

func TestMatrix_Orthogonal(t *testing.T) {
	r := rotor.FromPoints(pt(t, 0.3, 0.1, -0.8, 0.2), pt(t, -0.5, 0.6, 0.1, 0.4))
	rm, err := r.Matrix()
	require.NoError(t, err)

	rt, err := matrix.Transpose(rm)
	require.NoError(t, err)
	prod, err := matrix.Mul(rt, rm)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	ok, err := matrix.AllClose(prod, id, 0, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok, "RᵀR != I:\n%v", prod)

	idm, err := rotor.Identity().Matrix()
	require.NoError(t, err)
	ok, err = matrix.AllClose(idm, id, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAngle_LatticeNeighbors(t *testing.T) {
	lat, err := lattice.Canonical()
	require.NoError(t, err)
	v, err := lat.Vertex(0)
	require.NoError(t, err)
	nbrs, err := lat.NearestNeighbors(v, 13)
	require.NoError(t, err)

	// nbrs[0] is v itself; the next 12 sit at π/5.
	for _, n := range nbrs[1:] {
		w, err := lat.Vertex(n.Index)
		require.NoError(t, err)
		assert.InDelta(t, math.Pi/5, rotor.FromPoints(v, w).Angle(), 1e-12)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, rotor.Identity().IsValid(1e-10))
	assert.True(t, rotor.New(math.Sqrt(0.5), rotor.Bivector{0, 0, math.Sqrt(0.5)}).IsValid(1e-10))
	assert.False(t, rotor.New(1, rotor.Bivector{0.1}).IsValid(1e-10))
	assert.False(t, rotor.New(math.NaN(), rotor.Bivector{}).IsValid(1e-10))
}

func TestApply_NonFinite(t *testing.T) {
	p := pt(t, 1, 0, 0, 0)
	for _, r := range []rotor.Rotor{
		rotor.New(math.NaN(), rotor.Bivector{}),
		rotor.New(1, rotor.Bivector{0, math.Inf(1)}),
	} {
		_, err := r.Apply(p)
		assert.ErrorIs(t, err, rotor.ErrNonFinite)
	}
}
