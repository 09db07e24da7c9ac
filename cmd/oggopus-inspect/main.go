// Command oggopus-inspect walks an Ogg Opus file and reports header,
// channel-mapping, and packet statistics without decoding any audio --
// decode is an explicit non-goal of the container/ogg package (see its
// Decoder interface in decode.go).
//
// Usage:
//
//	oggopus-inspect -in podcast.opus
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/syncopus/oggopus/container/ogg"
)

const nextPacketsCapacity = 4096

func main() {
	inFile := flag.String("in", "", "Ogg Opus file to inspect")
	flag.Parse()

	if *inFile == "" {
		fmt.Println("Usage: oggopus-inspect -in <file.opus>")
		flag.PrintDefaults()
		return
	}

	if err := inspect(*inFile); err != nil {
		log.Fatalf("inspect failed: %v", err)
	}
}

func inspect(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	fmt.Printf("=== %s ===\n", filename)
	fmt.Printf("  File size: %d bytes\n", len(data))

	beginning := ogg.NewBitstream(data).Reader()
	streamIndex := 0

	for {
		streamIndex++
		inStream, eos, header, tags, err := beginning.ReadHeader()
		if err != nil {
			return fmt.Errorf("read header (stream %d): %w", streamIndex, err)
		}
		printHeader(streamIndex, header, tags)

		if inStream != nil {
			var packets, bytes int
			packets, bytes, eos, err = drainStream(inStream)
			if err != nil {
				return fmt.Errorf("read packets (stream %d): %w", streamIndex, err)
			}
			fmt.Printf("  Packets: %d\n", packets)
			fmt.Printf("  Packet bytes: %d\n", bytes)
		}

		next, ok := eos.NextReader()
		if !ok {
			break
		}
		beginning = next
	}

	fmt.Printf("  Logical bitstreams: %d\n", streamIndex)
	return nil
}

func printHeader(streamIndex int, header *ogg.OpusHeader, tags *ogg.OpusTags) {
	fmt.Printf("--- logical stream %d ---\n", streamIndex)
	fmt.Printf("  Version: %d\n", header.Version)
	fmt.Printf("  Channels: %d (mapping family %d)\n", header.Channels.ChannelCount(), header.Channels.Family)
	fmt.Printf("  Streams: %d (coupled: %d)\n", header.Channels.StreamCount(), header.Channels.CoupledStreamCount())
	fmt.Printf("  Pre-skip: %d samples\n", header.PreSkip)
	fmt.Printf("  Sample rate: %d Hz (informational; nearest supported: %d Hz)\n",
		header.SampleRate, ogg.NearestSupportedSampleRate(header.SampleRate))
	fmt.Printf("  Output gain: %d (Q7.8 dB)\n", header.OutputGain)
	if tags != nil {
		fmt.Printf("  Vendor: %s\n", tags.Vendor)
		for _, c := range tags.Comments {
			fmt.Printf("    %s\n", c)
		}
	}
}

// drainStream walks every remaining page group of one logical stream,
// counting packets and their total size, until it reaches EndOfStream.
func drainStream(inStream *ogg.ReaderInStream) (packets, bytes int, eos *ogg.ReaderEndOfStream, err error) {
	cur := inStream
	for cur != nil {
		var next *ogg.ReaderInStream
		var group *ogg.Packets
		next, eos, group, err = cur.NextPackets(nextPacketsCapacity)
		if err != nil {
			return packets, bytes, nil, err
		}
		for {
			pkt, ok := group.Next()
			if !ok {
				break
			}
			packets++
			bytes += len(pkt)
		}
		if eos != nil {
			return packets, bytes, eos, nil
		}
		cur = next
	}
	return packets, bytes, eos, nil
}
