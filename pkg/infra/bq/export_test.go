package bq

import "time"

var (
	ProtoFieldJSONName = protoFieldJSONName
	SanitizeProtoJSON  = sanitizeProtoJSON
)

func (x *Client) SetRetryDelayForTest(d time.Duration) {
	x.retryDelay = d
}
