//go:build !methoddebug

package method

func assertNormalized(*Method) {}
