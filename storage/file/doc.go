// Package file provides the filesystem access documents need.
//
// Check runs before a document is loaded: a missing path is fine (the
// document starts empty), while a directory or a file the process cannot both
// read and write is rejected. Read and Write move whole files; Write creates
// missing parent directories.
//
// Error Handling:
//   - Errors include the filepath for easier debugging
//   - Use errors.Is with ErrPathIsDirectory, ErrPermissionDenied, ErrNotFound
//     and ErrWrite to tell failures apart
package file
