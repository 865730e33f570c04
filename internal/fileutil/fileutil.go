// Package fileutil holds the file permission modes shared by the
// exporters and the batch scanner.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for export files, which can
// describe internal APIs (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for batch reports intended
// to be read by other tools and users.
const ReadableByAll os.FileMode = 0o644
