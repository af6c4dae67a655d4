package lineedit

// In-band synchronisation, used by test drivers to wait until every byte
// written before a request has been processed and drawn.
//
// Requests and acknowledgements are APC strings, which terminals ignore:
//
//	request:  ESC _ lineedit:sync:<id> ESC \
//	response: ESC _ lineedit:sync-ack:<id> ESC \
const (
	SyncPrefix       = "\x1b_lineedit:sync:"
	SyncAckPrefix    = "\x1b_lineedit:sync-ack:"
	StringTerminator = "\x1b\\"

	// maxSyncBufferSize bounds how much of an unterminated APC string is
	// held while waiting for the terminator.
	maxSyncBufferSize = 4096
)

// BuildSyncRequest returns the request bytes for id.
func BuildSyncRequest(id string) []byte {
	return []byte(SyncPrefix + id + StringTerminator)
}

// BuildSyncAck returns the acknowledgement bytes for id.
func BuildSyncAck(id string) []byte {
	return []byte(SyncAckPrefix + id + StringTerminator)
}
