package heredity

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
)

// OpenPedigreeGoogleStorage reads a pedigree CSV from a Google Storage
// object named like gs://bucket/path/to/pedigree.csv, with the same gzip
// handling as OpenPedigree. The caller owns the client.
func OpenPedigreeGoogleStorage(ctx context.Context, client *storage.Client, path string) (*Pedigree, error) {
	if !strings.HasPrefix(path, "gs://") {
		return nil, pfx.Err(fmt.Errorf("%q is not a gs:// path", path))
	}

	bucketAndObject := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(bucketAndObject) != 2 || bucketAndObject[1] == "" {
		return nil, pfx.Err(fmt.Errorf("%q does not name an object within a bucket", path))
	}

	rc, err := client.Bucket(bucketAndObject[0]).Object(bucketAndObject[1]).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(rc)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	}

	return ReadPedigree(r)
}
