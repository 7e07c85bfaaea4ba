package resp

const lineSeparator = "\r\n"
