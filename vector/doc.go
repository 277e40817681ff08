// Package vector provides the fixed-dimension real vector (point)
// primitive underlying every geometric operation in the library.
//
// 🚀 What is vector?
//
//	A thin, allocation-conscious wrapper over a []float64 with the
//	operations a polytope needs:
//	  • Add / Sub / Scale / AddScaled — elementwise arithmetic
//	  • Dot / Magnitude / SqMagnitude / Distance — metric queries
//	  • Project — component along another vector
//	  • ApplyMatrix — image under a gonum mat.Matrix
//	  • Resize — truncate or zero-pad to a new dimension
//
// ⚙️ Contract:
//
//	All vectors participating in one operation share the same dimension.
//	A mismatch is a programming error, not a recoverable condition: the
//	gonum kernels panic, and this package does not catch them. Use
//	Resize to move a vector between spaces explicitly.
//
//	Arithmetic methods mutate the receiver and return it for chaining;
//	use Clone when the original must survive.
//
// Performance:
//
//   - All operations are O(d) in the dimension, zero allocations except
//     Clone, Project, ApplyMatrix and Resize.
package vector
