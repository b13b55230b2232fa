// Package check402 finds web clients that only ever get "402 Payment
// Required" back from a server, by reading its access log.
//
// The package is organised around a Pipe, which is a stream of log lines that
// can be chained through filters and finally consumed by a sink:
//
//	report, err := check402.File("access.log").ExclusiveStatus(402).String()
//
// If any pipe operation results in an error, the pipe's Error() method will
// return that error, and all later pipe operations will be no-ops. Thus you
// can safely chain a whole series of operations without checking the error
// status at each stage:
//
//	p := check402.File("doesnt_exist.log")
//	out, err := p.Qualifying().ExclusiveStatus(402).String()
//	fmt.Println(out == "", err)
//
// Output: true open doesnt_exist.log: no such file or directory
//
// Lines are expected in Combined Log Format:
//
//	1.2.3.4 - - [10/Oct/2023:00:00:00 +0000] "GET /a HTTP/1.1" 402 10 "-" "UA1"
//
// Lines that don't match are skipped silently. Input is decoded as UTF-8, and
// any invalid byte sequence is replaced by U+FFFD rather than causing an
// error.
package check402
