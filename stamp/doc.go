// Package stamp rewrites the initializers of C++ constants in place.
//
// A run takes a source buffer and a list of IDENT=EXPR requests. Each
// identifier is looked up among the variable declarations of the buffer's
// syntax tree, optionally restricted to a namespace. The expression is
// expanded ({date}, {time} and {++} placeholders) and compiled into a literal
// of the same form as the current initializer: a quoted, escaped string or
// an integer in the same radix with the same suffix. Only the bytes of the
// literal token change; every other byte of the buffer is preserved.
//
// Requests are independent. A request that cannot be applied is reported
// with a [Status] and does not stop the others.
//
//	reqs := stamp.ParseRequests("build_date={date}", "build_number={++}")
//	report, err := stamp.StampFile(ctx, "version.cpp", cpp.New(), reqs,
//		stamp.WithNamespace("build_info"))
package stamp
