// Package bloomgo provides an embeddable Bloom filter for Go, with an
// optional counting mode that supports deletion.
//
// A filter answers "possibly present" / "definitely absent" membership
// queries in constant time without storing the elements themselves. Sizing
// follows the standard optimal formulas from a target capacity and
// false-positive rate, or can be pinned explicitly to match an existing
// layout.
//
// # Quick Start
//
//	f, _ := bloomgo.New(
//	    bloomgo.WithCapacity(100_000),
//	    bloomgo.WithErrorRate(0.001),
//	)
//
//	f.Insert(bloomgo.String("alice@example.com"))
//
//	res, _ := f.Query(bloomgo.String("alice@example.com"))
//	fmt.Println(res.OK) // true, always: no false negatives
//
// # Counting Mode
//
// With WithCounting, slots are saturating counters instead of single bits
// and elements can be deleted:
//
//	f, _ := bloomgo.New(bloomgo.WithCounting())
//	f.Insert(bloomgo.String("x"))
//	res, _ := f.Delete(bloomgo.String("x")) // res.OK == true
//
// Delete on a plain filter reports false and changes nothing: bits cannot
// be unset.
//
// # Collections
//
// Operations accept nested collections and visit every scalar leaf in
// order; shaped results mirror the input:
//
//	res, _ := f.Query(bloomgo.Collection(
//	    bloomgo.String("a"),
//	    bloomgo.Collection(bloomgo.String("b"), bloomgo.Int(42)),
//	))
//	// res.Items[0] is "a", res.Items[1].Items[1] is 42
//
// # Snapshots
//
// Filters persist as self-describing snapshots, to any io.Writer or to a
// blob store (local filesystem, S3, MinIO, in-memory):
//
//	store, _ := blobstore.NewLocalStore("./data")
//	f.Save(ctx, store, "emails.blf")
//	f, _ = bloomgo.Load(ctx, store, "emails.blf")
//
// Snapshots of an empty filter omit the slot array entirely, since it is
// provably all-zero.
//
// # Concurrency
//
// A Filter is not safe for concurrent mutation; it assumes a single owner.
// Wrap it externally if multiple goroutines must write.
package bloomgo
