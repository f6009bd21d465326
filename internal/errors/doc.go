// Package errors carries coded errors through the battle service.
//
// Every error returned across a package boundary is an *Error with a Code
// that maps one-to-one onto a gRPC status code:
//
//	err := errors.NotFoundf("battle %s not found", id)
//	err = errors.Wrap(err, "failed to load battle")
//	errors.IsNotFound(err) // true, Wrap keeps the code
//
// Turn selection problems (unknown move, no PP left, battle over) surface as
// InvalidArgument or FailedPrecondition so handlers can reject the request
// without treating it as a server fault.
//
// Config structs validate with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Repository == nil {
//	    vb.RequiredField("Repository")
//	}
//	return vb.Build()
package errors
