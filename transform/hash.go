package transform

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

func MD5Hash(input string) (string, error) {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}

func SHA1Hash(input string) (string, error) {
	sum := sha1.Sum([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}

func SHA256Hash(input string) (string, error) {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}

func SHA512Hash(input string) (string, error) {
	sum := sha512.Sum512([]byte(input))
	return hex.EncodeToString(sum[:]), nil
}
