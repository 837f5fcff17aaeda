// Package pipeline orchestrates the rename run: file discovery, plan
// building with collision skipping, dry-run preview, execution, and batch
// summary reporting.
//
// A run is strictly sequential: discover → sort → build plan → print or
// execute. A missing target directory is the only hard failure; everything
// else (collisions, individual rename errors) is reported per entry and the
// run continues.
package pipeline
