package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	prefixed "github.com/BertoldVdb/logrus-prefixed-formatter"
	"github.com/sirupsen/logrus"
	"github.com/swdee/go-lidarlite"
)

func main() {

	i2cbus := flag.String("b", "/dev/i2c-1", "Path to I2C bus to use")
	addr := flag.Uint("a", uint(lidarlite.Address), "I2C address of the sensor")
	preset := flag.Uint("p", uint(lidarlite.Default), "Configuration preset 0-6")
	count := flag.Int("n", 100, "Number of measurements to take, 0 runs until interrupted")
	avg := flag.Int("avg", 1, "Print the mean of this many measurements")
	corr := flag.Int("c", 0, "Number of correlation record points to dump after measuring")
	newAddr := flag.Uint("set-addr", 0, "Assign this secondary address before measuring")
	disableDefault := flag.Bool("disable-default", false, "Disable the previous address after -set-addr")
	loglevel := flag.Int("loglevel", int(logrus.InfoLevel), "The loglevel to use. Valid values are from 0 to 6")
	flag.Parse()

	log := getLogger(logrus.Level(*loglevel))

	if *addr == 0 || *addr > 0x7F {
		log.Fatalf("Invalid I2C address 0x%02x, must be 0x01-0x7f", *addr)
	}

	if *newAddr > 0x7F {
		log.Fatalf("Invalid secondary address 0x%02x, must be 0x01-0x7f", *newAddr)
	}

	if *avg < 1 {
		log.Fatalf("Invalid -avg %d, must be at least 1", *avg)
	}

	// Open I2C bus
	bus, err := lidarlite.NewI2CBus(*i2cbus, uint8(*addr))

	if err != nil {
		log.Fatal(err)
	}

	defer bus.Close()

	sensor, err := lidarlite.NewWithLog(bus, uint8(*addr), log.WithField("prefix", "lidarlite"))

	if err != nil {
		log.Fatal(err)
	}

	if *newAddr != 0 {
		if err := sensor.SetSecondaryAddress(uint8(*newAddr), *disableDefault); err != nil {
			log.Fatalf("Set secondary address failed: %v", err)
		}

		log.Infof("Sensor now on address 0x%02x", sensor.Address())
	}

	if err := sensor.Configure(lidarlite.Preset(*preset)); err != nil {
		log.Fatalf("Configure failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := stream(ctx, sensor, *count, *avg); err != nil && ctx.Err() == nil {
		log.Fatalf("Measurement failed: %v", err)
	}

	if *corr > 0 {
		dumpCorrelation(ctx, log, sensor, *corr)
	}
}

// stream takes measurements as fast as the sensor allows.  Whenever the sensor
// is idle the next acquisition is started before the previous result is read,
// so bus traffic overlaps the measurement.  With avg above 1 the mean of every
// avg measurements is printed instead of each one.
func stream(ctx context.Context, sensor *lidarlite.LIDARLite, count, avg int) error {

	mean := newAverage(avg)

	// take a first range so the initial read has data
	if err := sensor.TakeRange(); err != nil {
		return err
	}

	for i := 0; count == 0 || i < count; {

		if err := ctx.Err(); err != nil {
			return err
		}

		busy, err := sensor.IsBusy()

		if err != nil {
			return err
		}

		if busy {
			continue
		}

		if err := sensor.TakeRange(); err != nil {
			return err
		}

		m, err := sensor.Read()

		if err != nil {
			return err
		}

		if avg <= 1 {
			fmt.Printf("%d,%d\n", m.Distance, m.SignalStrength)
		} else if dist, sig, ok := mean.add(m); ok {
			fmt.Printf("%f,%f\n", dist, sig)
		}

		i++
	}

	return nil
}

// dumpCorrelation prints a correlation record after a completed measurement
func dumpCorrelation(ctx context.Context, log *logrus.Entry,
	sensor *lidarlite.LIDARLite, count int) {

	if _, err := sensor.ReadSingle(ctx); err != nil {
		log.Fatalf("Single measurement failed: %v", err)
	}

	record, err := sensor.ReadCorrelationRecord(count)

	if err != nil {
		log.Fatalf("Read correlation record failed: %v", err)
	}

	for i, val := range record {
		fmt.Printf("%d,%d\n", i, val)
	}
}

// getLogger returns a logger using the prefixed text formatter
func getLogger(level logrus.Level) *logrus.Entry {
	logrus.ErrorKey = "$error"
	logger := logrus.New()
	logger.SetLevel(level)
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	customFormatter.PrefixPadding = 20
	customFormatter.SpacePadding = 50
	logger.SetFormatter(customFormatter)
	return logrus.NewEntry(logger)
}
