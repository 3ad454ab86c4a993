package main

const manual = `banner - draw a fixed-width comment banner around a title

Synopsis

  banner [opts] word [word ...]
  banner [opts] -

Description

banner prints a decorative box suitable for marking sections of source
documents, for example TeX files.  The title is uppercased, each
character is followed by a space, and the result is centered between
two marker characters.  Around the title line come 'rank' blank
bordered lines and 'pad' fully filled lines:

  $ banner -w 21 the end
  %%%%%%%%%%%%%%%%%%%%%
  %                   %
  %                   %
  %   T H E   E N D   %
  %                   %
  %                   %
  %%%%%%%%%%%%%%%%%%%%%

Every line of the output is exactly the requested width.  When the
free space around the title is odd, the left margin gets the extra
column.  A title too long for the width is an error and nothing is
printed.

When the only (non option) argument is '-', the title is read from the
first line of standard input; the rest of the input is ignored.
Multiple word arguments are joined with single spaces.  Tabs in the
title expand to 8 spaces before spacing is applied.

Options

  -w, -width   banner width in characters (default 80)
  -r, -rank    blank bordered lines above and below the title (default 2)
  -p, -pad     fully filled lines at the top and bottom (default 1)
  -c, -char    marker character drawing the box (default '%')
  -color       draw the banner in color; the default is to use color
               only when the output is a terminal
  -o           output file (default stdout)
  -h, -help    print usage and exit
  -manual      print this manual and exit

Examples

  banner introduction
  banner -w 60 -r 1 chapter one
  echo "the end" | banner -
  banner -c '#' -o section.txt results
`
