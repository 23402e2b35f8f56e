// Package cli provides the recordkeeper command-line client.
//
// It wires configuration, logging, the two single-record stores and their
// reporting services, and exposes them as cobra commands:
//
//   - recordkeeper              run the demonstration: read, write, re-read,
//     show permissions and print the summary
//   - recordkeeper show         print the stored credential and message
//   - recordkeeper perms        print the permission bits of both files
//   - recordkeeper user set     store a credential (password read without echo)
//   - recordkeeper message set  store a message
//
// Store failures are reported on the output stream; the demonstration never
// fails because of them.
package cli
