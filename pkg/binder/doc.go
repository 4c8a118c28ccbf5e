// Package binder fills request structs from the HTTP request.
//
// Each binder handles one source and one struct tag:
//
//	type AddCommentRequest struct {
//	    FeedbackID string `path:"id"`
//	    Text       string `json:"text"`
//	}
//
//	handler.Wrap(addComment, handler.WithBinders[handler.Context, AddCommentRequest](
//	    binder.Path(chi.URLParam),
//	    binder.JSON(),
//	))
//
// Supported field kinds for path and query tags are string, bool, signed
// and unsigned integers and their pointers. A tag of "-" skips the field.
package binder
