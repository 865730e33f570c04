// Package batch scans a directory of OpenAPI documents and summarizes
// each one.
//
// Scan picks up every *.json, *.yaml, and *.yml file in the directory
// (not recursing), runs each through load, validate, and statistics, and
// returns a Report with one entry per file in name order. A file that
// fails to load is recorded and the scan continues; only an unreadable
// directory or a cancelled context abort the whole run.
//
//	report, err := batch.Scan(ctx, "./specs", batch.WithWorkers(8))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Totals())
//
// Files are processed concurrently, bounded by WithWorkers (default 4).
// Documents never share state, so no locking is involved.
package batch
