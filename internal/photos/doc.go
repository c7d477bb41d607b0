// Package photos talks to the remote photo library.
//
// Client fetches pages of media items for a bearer token and downloads their
// bytes. Accept is the filter predicate applied to each item before it is
// classified: screenshots and items without a capture time are dropped.
package photos
