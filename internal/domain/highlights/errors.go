package highlights

import "errors"

// Messages shown to fans when highlights cannot be loaded.
const (
	MessageQuota         = "YouTube Data API v3가 활성화되지 않았습니다."
	MessageFetchFailed   = "YouTube 데이터를 가져오는데 실패했습니다."
	MessageMissingAPIKey = "YouTube API 키가 설정되지 않았습니다."
)

// ErrMissingAPIKey reports that no video API credential is configured. It is never turned into a
// degraded Result.
var ErrMissingAPIKey = errors.New("video api key not configured")
