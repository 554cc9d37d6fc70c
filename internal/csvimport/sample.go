package csvimport

// SampleFileName is the download name offered for the reference CSV.
const SampleFileName = "sample_quiz.csv"

// SampleCSV is a fixed reference upload in the numbered-option layout,
// served for download so users can see the expected format.
const SampleCSV = `question,option1,option2,option3,option4,answer
What is the capital of France?,Paris,London,Berlin,Madrid,Paris
Who wrote Romeo and Juliet?,Charles Dickens,William Shakespeare,Jane Austen,Mark Twain,William Shakespeare
What is the largest planet in our solar system?,Earth,Mars,Jupiter,Venus,Jupiter
What is 2+2?,2,3,4,5,4
What is the chemical symbol for water?,H2O,CO2,O2,N2,H2O`
