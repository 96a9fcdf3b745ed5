// Package spectro provides the in-memory spectrogram representation shared
// by the augmentation and generation packages.
//
// A spectrogram is an H x W grid of RGBA pixels: rows are frequency bands,
// columns are time bands, and grayscale content is encoded as R=G=B with
// opaque alpha. The maximum-brightness value 255 doubles as the silence
// sentinel used by border filling.
package spectro
