// Package sanitizer cleans free-text form input before it is validated,
// displayed or relayed to a third-party channel.
//
// The central helper is Text, a fixed pipeline that removes markup and
// script-injection fragments and then normalises whitespace:
//
//  1. strip HTML tag-like substrings (<...>)
//  2. strip the characters < > " ' ` ; ( ) { }
//  3. strip the "javascript:" scheme (case-insensitive)
//  4. strip inline event-handler fragments such as "onclick=" (case-insensitive)
//  5. trim leading and trailing whitespace
//  6. collapse interior runs of two or more whitespace characters into one space
//
// Steps 3 and 4 are repeated until nothing matches, so a removal cannot expose
// a new dangerous fragment. As a result Text is idempotent and never makes its
// input longer:
//
//	clean := sanitizer.Text(`  <b>Team</b>   "fsociety"  `) // "Team fsociety"
//
// Format helpers normalise values that are compared or transmitted verbatim:
//
//	sanitizer.NormalizeEmail("  Arun@IITM.ac.in ") // "arun@iitm.ac.in"
//	sanitizer.NormalizePhone("+91 98765-43210")    // "919876543210"
//
// Apply and Compose build custom pipelines out of the individual steps:
//
//	clean := sanitizer.Compose(sanitizer.StripTags, sanitizer.Trim)
//
// # Error handling
//
// None of the helpers returns an error. They are pure functions with no global
// state and are safe for concurrent use.
package sanitizer
