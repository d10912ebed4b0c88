// Package album derives tag-based albums from a flat image collection.
//
// Every tag shared by at least two images is a candidate album. Candidates
// are visited from the most specific (fewest images) to the broadest, ties
// in the order tags first appear in the collection, and each image is given
// to the first album that takes it. An album survives only if it still has
// two or more members once earlier albums have claimed theirs.
//
// Group is pure: the claimed set lives for a single call and the input is
// never modified.
package album
