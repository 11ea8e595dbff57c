// Package anonymizer replaces the values of a categorical column with
// generated "<adjective> <animal>" placeholders.
//
// Substitute is the pure transform: given a dataset, a column and an ordered
// placeholder sequence it returns a new dataset in which the i-th distinct
// value (in order of first appearance) is replaced by the i-th placeholder,
// together with the Mapping that was applied. Missing cells (nil or "") are
// values like any other unless WithSkipMissing is given.
//
// When a column has more distinct values than placeholders, the Overflow
// policy decides the outcome: OverflowError (the default) fails with
// ErrNotEnoughPlaceholders, OverflowWrap reuses placeholders cyclically and
// OverflowPassthrough leaves the excess values unchanged.
//
// Anonymizer wires the pieces together. It loads the word lists through a
// file.Reader (or falls back to the built-in dictionaries), generates the
// placeholders once per call and substitutes the configured column:
//
//	a, err := anonymizer.New(cfg, storage, log)
//	if err != nil {
//	    return err
//	}
//	out, mapping, err := a.Anonymize(ctx, ds)
//
// The transform is not idempotent. Anonymizing an already anonymized dataset
// treats the placeholders as ordinary values and substitutes them again.
// Neither the generated names nor the mapping are guaranteed unique unless
// Config.Dedupe or Config.Strict is set, and the mapping is never persisted.
package anonymizer
