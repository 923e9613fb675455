// Package bible provides a client for the scripture.api.bible REST API.
//
// The API serves Bible translations and their books, chapters, verses,
// passages and sections, plus full-text search within a translation.
// This package builds the request URLs, attaches the API key, performs a
// single GET per call and normalizes the outcome.
//
// # Architecture
//
// The package is organized into two layers:
//
//   - RequestBuilder: BuildRequest turns an Operation, its path IDs and a
//     Params bag into a fully qualified URL plus headers. It does no I/O.
//     Every operation is described by one row of the endpoint table.
//   - Client: one method per operation. Each method delegates to
//     BuildRequest, issues one GET through the Transport and returns the
//     decoded JSON body or an error.
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := bible.NewClient("your-api-key", logger,
//		bible.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	resp, err := client.GetChapter(ctx, "de4e12af7f28f599-01", "GEN.1", bible.Params{
//		bible.ParamIncludeVerseNumbers: true,
//		bible.ParamContentType:         "text",
//	})
//
// # Options
//
// Params is deliberately forgiving. Unknown keys are ignored, falsy values
// are left out of the query string, an unsupported content type becomes
// json, and a non-numeric search limit or offset falls back to its
// default. Only a missing path ID is an error.
//
// # Error Handling
//
//   - MissingParameterError: a mandatory path ID was empty (no request made)
//   - TransportError: the HTTP call itself failed
//   - APIError: the API answered with a non-2xx status
//
// APIError carries the decoded error body when there is one:
//
//	var apiErr *bible.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing resource
//	}
package bible
