// Package zoom turns Control+scroll gestures into Command+'+' / Command+'-'
// keystrokes.
//
// A Translator filters each scroll event on the Control modifier and a
// magnitude threshold, rate-limits triggered sequences with a timestamp
// debouncer, and posts a four-event key sequence through a
// domain.KeyInjector. Handle never blocks the caller: scroll sources invoke it
// on the OS event delivery thread.
package zoom
