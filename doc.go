/*Package dgtraj analyzes per-frame MM-GBSA binding-energy trajectories.

It reads the per-frame CSV written by Schrodinger's thermal_MMGBSA.py (the
r_psp_MMGBSA_dG_Bind column, plus the optional title column for the ligand
label) into an immutable Trajectory, and derives from it:

	A causal running mean with a caller-chosen window (1-50 frames, clamped
	to the series length, with the effective window reported back).

	A symmetric dispersion band around the running mean: standard error,
	standard deviation or the 95% confidence interval from the Student t
	distribution, over the same causal windows.

	Whole-series summary statistics: mean, sample standard deviation,
	minimum (best), maximum (worst) and frame count.

	A comparison table for up to six trajectories at once, each assigned a
	deterministic color and line style from its insertion position.

The numerical kernels live in the dgstat subpackage, static plotting in
dgplot, and a command-line front end in cmd/dgtraj. Everything is computed
fresh per call from explicit options; no state survives between independent
computations. Per-file problems in comparison mode are isolated, so one
malformed file never takes down the statistics of the others.*/
package dgtraj
