// Package ticker implements a periodic trigger driven by a virtual clock.
//
// A Ticker never reads the wall clock itself: the caller passes the current
// time to Advance, and the ticker fires its callback once for every full
// interval that has elapsed since the last mark. Missed intervals are caught
// up rather than dropped, and the mark moves by exactly one interval per fire
// so scheduling jitter never accumulates as drift.
package ticker
