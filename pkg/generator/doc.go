// Package generator orchestrates the catalog generation batch.
//
// One Build call performs a single full pass: candidate archives are
// discovered under the bundles directory, validated, extracted one at a
// time, folded into the search index, and written out as a static site.
// Per-bundle failures are classified into report buckets and never abort
// the batch; the run always completes and writes its report files.
//
// Usage:
//
//	g, err := generator.New(
//	    generator.WithVersion(version),
//	    generator.WithChecksums(true),
//	)
//	if err != nil {
//	    return err // configuration defect, e.g. invalid field mapping
//	}
//	rep, err := g.Build(ctx, bundlesDir, siteDir)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rep.Summary())
package generator
