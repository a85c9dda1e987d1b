// 15 Jun 2026

/*

Basecomp reads a fastq file and prints how often each nucleotide
occurs. For files out of fastqgen the four fractions should sit close
to a quarter each. A byte in a sequence line which is not one of ATCG
is an error and the position is reported.

Usage:
	basecomp filename

*/
package main
