// Package clothoid evaluates points on Euler spirals (clothoids), the curves
// whose curvature varies linearly with arc length. Clothoids are the
// standard transition curve of road and rail geometry descriptions such as
// OpenDRIVE, connecting straights and circular arcs with continuously
// varying curvature.
//
// # Components
//
// [Fresnel] computes the two canonical Fresnel integrals C(x) and S(x) to
// double precision over the entire real line, using the classical rational
// approximations of the Cephes library: minimax ratios of polynomials in x⁴
// for moderate arguments and an asymptotic expansion through auxiliary
// functions for large ones.
//
// [Spiral] is the canonical spiral, described only by its curvature rate. It
// rescales an arc length onto the normalized Fresnel argument and maps the
// integral pair back into local coordinates and heading. [Segment] positions
// a finite piece of a spiral in the plane the way road formats describe it,
// by start pose and start/end curvature.
//
// All evaluation is pure and allocation-free; values may be evaluated
// concurrently without synchronization.
//
// # Literature
//
//   - [Cephes Mathematical Library] by Stephen L. Moshier, fresnl.c
//   - Abramowitz & Stegun, Handbook of Mathematical Functions, §7.3
//   - [ASAM OpenDRIVE] spiral geometry records
//
// [Cephes Mathematical Library]: http://www.netlib.org/cephes/
// [ASAM OpenDRIVE]: https://www.asam.net/standards/detail/opendrive/
package clothoid
