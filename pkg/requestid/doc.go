// Package requestid tags each request with an ID.
//
// An inbound X-Request-ID made of letters, digits, '-' and '_' (at most 128
// bytes) is reused; anything else is replaced with a fresh UUID. The ID is
// echoed in the response and available through FromContext. LoggerExtractor
// plugs it into the site logger.
package requestid
