package zlutf

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instrumentation around the transcoder loop. All counters are
// registered against the default registry on package init so embedding
// applications get them for free by exposing the standard promhttp
// handler; none of this is reachable from the core decode/encode
// functions themselves, only from the Transcoder's Feed loop (which
// Transcode, Source.FeedAll and the sink wrappers all go through).
var (
	codePointsDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_codepoints_decoded_total",
		Help: "Code points decoded, labeled by source encoding.",
	}, []string{"encoding"})

	codePointsEncoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_codepoints_encoded_total",
		Help: "Code points encoded, labeled by destination encoding.",
	}, []string{"encoding"})

	decodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_decode_errors_total",
		Help: "Decode errors observed, labeled by source encoding.",
	}, []string{"encoding"})

	encodeFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_encode_fallbacks_total",
		Help: "Fallback substitutions performed, labeled by destination encoding.",
	}, []string{"encoding"})

	encodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_encode_errors_total",
		Help: "Unencodable code points rejected with ERRCODE, labeled by destination encoding.",
	}, []string{"encoding"})

	bytesTranscoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlutf_bytes_transcoded_total",
		Help: "Source bytes consumed by Transcode, labeled by source encoding.",
	}, []string{"encoding"})
)

func init() {
	prometheus.MustRegister(
		codePointsDecoded,
		codePointsEncoded,
		decodeErrors,
		encodeFallbacks,
		encodeErrors,
		bytesTranscoded,
	)
}
