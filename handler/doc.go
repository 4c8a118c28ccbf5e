// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value filled by binders,
// and returns a Response that renders itself:
//
//	type getFeedbackRequest struct {
//	    ID string `path:"id"`
//	}
//
//	r.Get("/api/feedback/{id}", handler.Wrap(
//	    func(ctx handler.Context, req getFeedbackRequest) handler.Response {
//	        fb, err := svc.GetFeedback(ctx, req.ID)
//	        if err != nil {
//	            return handler.JSONError(err)
//	        }
//	        return handler.JSON(fb)
//	    },
//	    handler.WithBinders[handler.Context, getFeedbackRequest](binder.Path(chi.URLParam)),
//	    handler.WithErrorHandler[handler.Context, getFeedbackRequest](errorHandler),
//	))
//
// Binding and rendering failures go to the ErrorHandler. NewErrorHandler
// builds one that classifies HTTPError values, validator.ValidationErrors
// and binder failures into JSON error envelopes.
package handler
