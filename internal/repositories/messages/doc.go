// Package messages persists the single message record.
//
// # File format
//
// Two lines:
//
//	free text of the message, spaces allowed
//	sender receiver
//
// Empty lines before the text are skipped. The text line is kept verbatim
// apart from its line terminator. The first non-blank line after it must start
// with the sender and receiver tokens; anything after them on that line is
// ignored. A text line without a sender/receiver line is reported as
// common.ErrMalformedRecord rather than loaded with empty fields.
package messages
