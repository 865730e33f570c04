// Package specerrors defines the error taxonomy shared by the
// swagger-to-docs packages.
//
// Callers are expected to use errors.Is with the exported sentinels to
// branch on error categories, and errors.As with the structured types to
// read details such as the failing pointer or the source location:
//
//	doc, err := parser.Load("api.yaml")
//	if errors.Is(err, specerrors.ErrNotFound) {
//	    // input file missing
//	}
//	var perr *specerrors.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println(perr.Line, perr.Column)
//	}
//
// Validation failures are intentionally absent from this package: the
// validator reports them as data (an ordered issue list), never as error
// values.
package specerrors
