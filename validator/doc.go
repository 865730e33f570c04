// Package validator checks the minimal structure an OpenAPI document
// must have before analysis or export makes sense.
//
// Validation is deliberately shallow: it confirms that the document
// declares a version (openapi or swagger), carries an info object with
// title and version, and has a paths object. Presence is what counts;
// an empty paths object is valid. Deeper problems, such as a broken
// reference, surface later from the operation that touches them.
//
// Structural problems are data, not errors. ValidateDocument always
// returns a Result; all checks run and every failure accumulates in
// Result.Errors in check order.
//
//	doc, err := parser.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := validator.New().ValidateDocument(doc)
//	if !result.Valid {
//		for _, issue := range result.Errors {
//			fmt.Println(issue)
//		}
//	}
//
// Warnings cover recommendations (a missing info.description, paths
// that do not start with "/", operations without a summary) and never
// affect Result.Valid.
package validator
