// 15 Jun 2026

/*

Fastqgen makes simulated fastq files for feeding to pipelines.
Usage:
	fastqgen [options] sequenceLength fileSizeInMB
will write four line records with sequences of sequenceLength bases
until at least fileSizeInMB megabytes are on disk. The last record is
always written whole, so the file can run over the target by up to one
record.

Flags:
	-r
		random number seed. Zero, the default, takes a seed from
		the clock so every run differs
	-o
		output file name. "-" writes to stdout. Without this flag
		the name is simulated_YYYYMMDDHHMMSS.fastq from the wall
		clock. Two runs in the same second get the same name and
		the second silently overwrites the first
	-p
		show a progress bar while writing
	-c
		read the finished file back and print its base composition
	-n
		read the finished file back and recount the records

The sequences are uniform random ATCG and the quality strings are
uniform random over ascii 33 to 73. Nothing about the data is
biologically sensible. It is test data.

*/
package main
