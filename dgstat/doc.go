/*Package dgstat implements the numerical kernels for per-frame binding-energy
trajectories: the causal running mean used for trend smoothing, the symmetric
dispersion bands drawn around it (standard error, standard deviation and the
95% confidence interval from the Student t distribution) and whole-series
summary statistics.

All windows are causal and left-truncated: the point i is computed from the
min(i+1, window) values ending at, and including, i. The first window-1 points
of a series therefore use a progressively smaller window instead of being
undefined. Degenerate windows (one point or less) take explicit branches that
return zero dispersion, so no NaN or Inf ever leaves this package.*/
package dgstat
