// Package checksum provides SHA256 checksum generation for verification of
// generated site files.
//
// Usage:
//
//	err := checksum.Generate(ctx, siteDir, writtenFiles)
//	if err != nil {
//	    return err
//	}
//
// The checksums.txt file format is compatible with sha256sum:
//
//	sha256sum -c checksums.txt
package checksum
